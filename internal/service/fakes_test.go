package service

import (
	"strings"

	"go-inventory-genie/internal/model"
	"go-inventory-genie/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory doubles for the repository interfaces, so service logic is
// tested without a database.

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*model.User{}}
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type fakeBaseProductRepo struct {
	products map[uuid.UUID]*model.BaseProduct
}

func newFakeBaseProductRepo() *fakeBaseProductRepo {
	return &fakeBaseProductRepo{products: map[uuid.UUID]*model.BaseProduct{}}
}

func (r *fakeBaseProductRepo) FindByIdentity(userID uuid.UUID, name, brand string) (*model.BaseProduct, error) {
	for _, p := range r.products {
		if p.UserID == userID && p.Name == name && p.Brand == brand {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeBaseProductRepo) FindAllByUser(userID uuid.UUID) ([]model.BaseProduct, error) {
	var out []model.BaseProduct
	for _, p := range r.products {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeBaseProductRepo) Create(product *model.BaseProduct) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeBaseProductRepo) DeleteByUser(userID uuid.UUID) (int64, error) {
	var n int64
	for id, p := range r.products {
		if p.UserID == userID {
			delete(r.products, id)
			n++
		}
	}
	return n, nil
}

type fakeBatchRepo struct {
	batches map[uuid.UUID]*model.ProductBatch
}

func newFakeBatchRepo() *fakeBatchRepo {
	return &fakeBatchRepo{batches: map[uuid.UUID]*model.ProductBatch{}}
}

func (r *fakeBatchRepo) Create(batch *model.ProductBatch) error {
	if batch.ID == uuid.Nil {
		batch.ID = uuid.New()
	}
	copied := *batch
	r.batches[batch.ID] = &copied
	return nil
}

func (r *fakeBatchRepo) FindAllByUser(userID uuid.UUID, q repository.BatchQuery) ([]model.ProductBatch, error) {
	var out []model.ProductBatch
	for _, b := range r.batches {
		if b.UserID != userID {
			continue
		}
		if q.Category != "" && (b.BaseProduct == nil || b.BaseProduct.Category != q.Category) {
			continue
		}
		if q.Name != "" && !strings.Contains(strings.ToLower(b.BaseProductName), strings.ToLower(q.Name)) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBatchRepo) FindByIDForUser(userID, id uuid.UUID) (*model.ProductBatch, error) {
	if b, ok := r.batches[id]; ok && b.UserID == userID {
		copied := *b
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeBatchRepo) SKUExists(sku string) (bool, error) {
	for _, b := range r.batches {
		if b.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBatchRepo) Save(batch *model.ProductBatch) error {
	copied := *batch
	r.batches[batch.ID] = &copied
	return nil
}

func (r *fakeBatchRepo) DeleteForUser(userID, id uuid.UUID) (int64, error) {
	if b, ok := r.batches[id]; ok && b.UserID == userID {
		delete(r.batches, id)
		return 1, nil
	}
	return 0, nil
}

func (r *fakeBatchRepo) DeleteByUser(userID uuid.UUID) (int64, error) {
	var n int64
	for id, b := range r.batches {
		if b.UserID == userID {
			delete(r.batches, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeBatchRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int) error {
	if b, ok := r.batches[id]; ok {
		b.Quantity = newQuantity
		return nil
	}
	return gorm.ErrRecordNotFound
}

type fakeLegacyRepo struct {
	products map[uuid.UUID]*model.LegacyProduct
}

func newFakeLegacyRepo() *fakeLegacyRepo {
	return &fakeLegacyRepo{products: map[uuid.UUID]*model.LegacyProduct{}}
}

func (r *fakeLegacyRepo) FindAllByUser(userID uuid.UUID) ([]model.LegacyProduct, error) {
	var out []model.LegacyProduct
	for _, p := range r.products {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeLegacyRepo) DeleteByUser(userID uuid.UUID) (int64, error) {
	var n int64
	for id, p := range r.products {
		if p.UserID == userID {
			delete(r.products, id)
			n++
		}
	}
	return n, nil
}

type fakeSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[uuid.UUID]*model.Sale{}}
}

func (r *fakeSaleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	copied := *sale
	r.sales[sale.ID] = &copied
	return nil
}

func (r *fakeSaleRepo) FindAllByUser(userID uuid.UUID) ([]model.Sale, error) {
	var out []model.Sale
	for _, s := range r.sales {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) DeleteByUser(userID uuid.UUID) (int64, error) {
	var n int64
	for id, s := range r.sales {
		if s.UserID == userID {
			delete(r.sales, id)
			n++
		}
	}
	return n, nil
}

type fakeReportRepo struct {
	snapshots map[uuid.UUID]*model.ReportSnapshot
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{snapshots: map[uuid.UUID]*model.ReportSnapshot{}}
}

func (r *fakeReportRepo) Create(snapshot *model.ReportSnapshot) error {
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	copied := *snapshot
	r.snapshots[snapshot.ID] = &copied
	return nil
}

func (r *fakeReportRepo) FindByToken(token string) (*model.ReportSnapshot, error) {
	for _, s := range r.snapshots {
		if s.Token == token {
			copied := *s
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeReportRepo) DeleteByUser(userID uuid.UUID) (int64, error) {
	var n int64
	for id, s := range r.snapshots {
		if s.UserID == userID {
			delete(r.snapshots, id)
			n++
		}
	}
	return n, nil
}
