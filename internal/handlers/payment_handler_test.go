package handlers

import (
	"context"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"trackforce/internal/models"
	"trackforce/internal/services"
)

type fakePaymentStore struct {
	payments map[string]models.Payment
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: map[string]models.Payment{}}
}

func (f *fakePaymentStore) add(p models.Payment) string {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.payments[p.ID.Hex()] = p
	return p.ID.Hex()
}

func (f *fakePaymentStore) ListAll(_ context.Context) ([]models.Payment, error) {
	out := []models.Payment{}
	for _, p := range f.payments {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaymentStore) Get(_ context.Context, id string) (models.Payment, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Payment{}, services.ErrInvalidID
	}
	p, ok := f.payments[id]
	if !ok {
		return models.Payment{}, mongo.ErrNoDocuments
	}
	return p, nil
}

func (f *fakePaymentStore) HistoryByEmail(_ context.Context, email string) ([]models.Payment, error) {
	out := []models.Payment{}
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

func (f *fakePaymentStore) Create(_ context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}
	f.payments[payment.ID.Hex()] = payment
	return &mongo.InsertOneResult{InsertedID: payment.ID}, nil
}

func (f *fakePaymentStore) MarkPaid(ctx context.Context, id, transactionID string) (*mongo.UpdateResult, error) {
	p, err := f.Get(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &mongo.UpdateResult{}, nil
		}
		return nil, err
	}
	p.Status = models.PaymentPaid
	p.TransactionID = transactionID
	p.PaymentDate = time.Now()
	f.payments[id] = p
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakePayslips struct {
	url string
	err error
}

func (f *fakePayslips) PresignedPayslip(_ context.Context, _ string) (string, error) {
	return f.url, f.err
}

func newPaymentApp(store *fakePaymentStore, payslips PayslipProvider) *fiber.App {
	if payslips == nil {
		payslips = &fakePayslips{}
	}
	h := NewPaymentHandler(store, payslips)

	app := fiber.New()
	app.Get("/payment-requests", h.List)
	app.Patch("/payment-requests/:id/pay", h.MarkPaid)
	app.Get("/payment-history", h.History)
	app.Get("/payment/:id/payslip", h.Payslip)
	app.Get("/payment/:id", h.Get)
	app.Post("/payments", h.Create)
	return app
}

func TestPaymentHistoryRequiresEmail(t *testing.T) {
	app := newPaymentApp(newFakePaymentStore(), nil)
	resp, err := app.Test(jsonRequest(http.MethodGet, "/payment-history", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestPaymentHistorySortedByYearThenMonth(t *testing.T) {
	store := newFakePaymentStore()
	store.add(models.Payment{Email: "e@x.com", Year: 2024, Month: 3})
	store.add(models.Payment{Email: "e@x.com", Year: 2023, Month: 12})
	store.add(models.Payment{Email: "e@x.com", Year: 2024, Month: 1})
	store.add(models.Payment{Email: "other@x.com", Year: 2020, Month: 1})

	app := newPaymentApp(store, nil)
	resp, err := app.Test(jsonRequest(http.MethodGet, "/payment-history?email=e@x.com", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payments []models.Payment
	decodeBody(t, resp, &payments)
	require.Len(t, payments, 3)
	require.Equal(t, 2023, payments[0].Year)
	require.Equal(t, 1, payments[1].Month)
	require.Equal(t, 3, payments[2].Month)
}

func TestMarkPaidStoresLastTransactionID(t *testing.T) {
	store := newFakePaymentStore()
	id := store.add(models.Payment{Email: "e@x.com", Status: models.PaymentPending})
	app := newPaymentApp(store, nil)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/payment-requests/"+id+"/pay", fiber.Map{"transactionId": "tx-1"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Double-marking is allowed, the last supplied transaction id wins
	resp, err = app.Test(jsonRequest(http.MethodPatch, "/payment-requests/"+id+"/pay", fiber.Map{"transactionId": "tx-2"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.Equal(t, models.PaymentPaid, store.payments[id].Status)
	require.Equal(t, "tx-2", store.payments[id].TransactionID)
}

func TestMarkPaidRequiresTransactionID(t *testing.T) {
	store := newFakePaymentStore()
	id := store.add(models.Payment{Email: "e@x.com"})
	app := newPaymentApp(store, nil)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/payment-requests/"+id+"/pay", fiber.Map{}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGetPaymentNotFound(t *testing.T) {
	app := newPaymentApp(newFakePaymentStore(), nil)
	resp, err := app.Test(jsonRequest(http.MethodGet, "/payment/"+primitive.NewObjectID().Hex(), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPayslipRejectsUnsettledPayment(t *testing.T) {
	store := newFakePaymentStore()
	id := store.add(models.Payment{Email: "e@x.com", Status: models.PaymentPending})
	app := newPaymentApp(store, &fakePayslips{err: services.ErrNotSettled})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/payment/"+id+"/payslip", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestPayslipReturnsPresignedURL(t *testing.T) {
	store := newFakePaymentStore()
	id := store.add(models.Payment{Email: "e@x.com", Status: models.PaymentPaid})
	app := newPaymentApp(store, &fakePayslips{url: "http://minio/payslips/x.pdf"})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/payment/"+id+"/payslip", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	require.Equal(t, "http://minio/payslips/x.pdf", body["url"])
}
