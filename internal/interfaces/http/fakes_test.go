package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trungnq-dev/coffee-manager-api/internal/application/auth"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/report"
	"github.com/trungnq-dev/coffee-manager-api/internal/application/usecase"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain"
	"github.com/trungnq-dev/coffee-manager-api/internal/domain/entity"
	apphttp "github.com/trungnq-dev/coffee-manager-api/internal/interfaces/http"
	"github.com/trungnq-dev/coffee-manager-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory repositories
// ──────────────────────────────────────────────────────────────────────────────

// parseHex mirrors the store adapter contract: a malformed id is
// domain.ErrInvalidID before any lookup happens.
func parseHex(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}
	return nil
}

type fakeCategoryRepo struct {
	items []*entity.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	category.ID = primitive.NewObjectID()
	cp := *category
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if err := parseHex(id); err != nil {
		return nil, err
	}
	for _, c := range r.items {
		if c.ID.Hex() == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindByCode(_ context.Context, code, excludeID string) (*entity.Category, error) {
	for _, c := range r.items {
		if c.MaDanhMuc == code && c.ID.Hex() != excludeID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	out := []entity.Category{}
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Search(_ context.Context, keyword string) ([]entity.Category, error) {
	kw := strings.ToLower(keyword)
	out := []entity.Category{}
	for _, c := range r.items {
		if strings.Contains(strings.ToLower(c.MaDanhMuc), kw) ||
			strings.Contains(strings.ToLower(c.TenDanhMuc), kw) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	for i, c := range r.items {
		if c.ID == category.ID {
			cp := *category
			r.items[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) (*entity.Category, error) {
	if err := parseHex(id); err != nil {
		return nil, err
	}
	for i, c := range r.items {
		if c.ID.Hex() == id {
			removed := *c
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &removed, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeCustomerRepo struct {
	items []*entity.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	customer.ID = primitive.NewObjectID()
	cp := *customer
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if err := parseHex(id); err != nil {
		return nil, err
	}
	for _, c := range r.items {
		if c.ID.Hex() == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(_ context.Context) ([]entity.Customer, error) {
	out := []entity.Customer{}
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	for i, c := range r.items {
		if c.ID == customer.ID {
			cp := *customer
			r.items[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) (*entity.Customer, error) {
	if err := parseHex(id); err != nil {
		return nil, err
	}
	for i, c := range r.items {
		if c.ID.Hex() == id {
			removed := *c
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &removed, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeEmployeeRepo struct {
	items []*entity.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *entity.Employee) error {
	employee.ID = primitive.NewObjectID()
	cp := *employee
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	if err := parseHex(id); err != nil {
		return nil, err
	}
	for _, e := range r.items {
		if e.ID.Hex() == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) FindByEmail(_ context.Context, email, excludeID string) (*entity.Employee, error) {
	for _, e := range r.items {
		if e.Email == email && e.ID.Hex() != excludeID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]entity.Employee, error) {
	out := []entity.Employee{}
	for _, e := range r.items {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, employee *entity.Employee) error {
	for i, e := range r.items {
		if e.ID == employee.ID {
			cp := *employee
			r.items[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) (*entity.Employee, error) {
	if err := parseHex(id); err != nil {
		return nil, err
	}
	for i, e := range r.items {
		if e.ID.Hex() == id {
			removed := *e
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &removed, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeProductRepo struct {
	items []*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	product.ID = primitive.NewObjectID()
	cp := *product
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if err := parseHex(id); err != nil {
		return nil, err
	}
	for _, p := range r.items {
		if p.ID.Hex() == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindActiveByName(_ context.Context, name, excludeID string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.IsActive && p.Name == name && p.ID.Hex() != excludeID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListActive(_ context.Context) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range r.items {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListActiveByCategory(_ context.Context, category string) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range r.items {
		if p.IsActive && p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i, p := range r.items {
		if p.ID == product.ID {
			cp := *product
			r.items[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeTransactionRepo struct {
	items []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	tx.ID = primitive.NewObjectID()
	cp := *tx
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeTransactionRepo) List(_ context.Context) ([]entity.Transaction, error) {
	out := []entity.Transaction{}
	for _, tx := range r.items {
		out = append(out, *tx)
	}
	return out, nil
}

func (r *fakeTransactionRepo) ListByDateRange(_ context.Context, from, to string) ([]entity.Transaction, error) {
	out := []entity.Transaction{}
	for _, tx := range r.items {
		if tx.Date >= from && tx.Date <= to {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id string) (*entity.Transaction, error) {
	if err := parseHex(id); err != nil {
		return nil, err
	}
	for i, tx := range r.items {
		if tx.ID.Hex() == id {
			removed := *tx
			r.items = append(r.items[:i], r.items[i+1:]...)
			return &removed, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeUserRepo struct {
	items []*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = primitive.NewObjectID()
	cp := *user
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmailOrPhone(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == username || u.Phone == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// fakePDFGenerator returns a fixed byte blob so handler tests can assert the
// download headers without rendering a real document.
type fakePDFGenerator struct{}

func (fakePDFGenerator) GenerateTransactionReport(_ context.Context, _ *report.Summary) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Test app
// ──────────────────────────────────────────────────────────────────────────────

// newTestApp wires the full router against in-memory repositories.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	txRepo := &fakeTransactionRepo{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:    usecase.NewCategoryUseCase(&fakeCategoryRepo{}),
		CustomerUC:    usecase.NewCustomerUseCase(&fakeCustomerRepo{}),
		EmployeeUC:    usecase.NewEmployeeUseCase(&fakeEmployeeRepo{}),
		ProductUC:     usecase.NewProductUseCase(&fakeProductRepo{}),
		TransactionUC: usecase.NewTransactionUseCase(txRepo),
		ReportUC:      report.NewReportUseCase(txRepo, fakePDFGenerator{}),
		AuthUC:        auth.NewAuthUseCase(&fakeUserRepo{}),
		StorePing:     func(c *fiber.Ctx) error { return nil },
		Log:           logger.New(logger.Config{Env: "production", Level: "error"}),
		StaticDir:     t.TempDir(),
	})
	return app
}

// doJSON sends a JSON request and returns the response.
func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
