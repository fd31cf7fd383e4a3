package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID   uuid.UUID `validate:"uuid_required"`
	Name string    `validate:"required,min=3"`
}

func TestValidateStructClean(t *testing.T) {
	assert.Nil(t, ValidateStruct(&sample{ID: uuid.New(), Name: "abc"}))
}

func TestValidateStructReportsAllFailures(t *testing.T) {
	errs := ValidateStruct(&sample{Name: "ab"})
	require.Len(t, errs, 2)

	assert.Equal(t, "sample.ID", errs[0].Field)
	assert.Equal(t, "uuid_required", errs[0].Rule)
	assert.Equal(t, "sample.Name", errs[1].Field)
	assert.Equal(t, "min", errs[1].Rule)
	assert.Equal(t, "field 'sample.Name' failed on rule 'min=3'", errs[1].Message())
}

func TestUUIDRequiredRejectsZeroValue(t *testing.T) {
	errs := ValidateStruct(&sample{ID: uuid.Nil, Name: "abc"})
	require.Len(t, errs, 1)
	assert.Equal(t, "uuid_required", errs[0].Rule)
}
