package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	venueRepo "venuebook/database/repository/venue"
	"venuebook/handlers"
	"venuebook/models"
	"venuebook/services/checkout"
	"venuebook/services/payment"
	"venuebook/services/venue"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memRepo struct {
	venues map[string]models.Venue
}

func (r *memRepo) GetByID(_ context.Context, id string) (*models.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	return &v, nil
}

func (r *memRepo) GetAll(context.Context) ([]models.Venue, error) {
	out := []models.Venue{}
	for _, v := range r.venues {
		out = append(out, v)
	}
	return out, nil
}

func (r *memRepo) Create(_ context.Context, v *models.Venue) error {
	v.ID = primitive.NewObjectID()
	r.venues[v.ID.Hex()] = *v
	return nil
}

func (r *memRepo) EnsureIndexes(context.Context) error { return nil }

const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"

func newTestRouter(t *testing.T) (*gin.Engine, primitive.ObjectID, primitive.ObjectID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	open := models.Venue{ID: primitive.NewObjectID(), Name: "Lakeside Lawn", Price: 50000, Phone: "03001234567", Email: "lake@example.com"}
	closed := models.Venue{ID: primitive.NewObjectID(), Name: "Heritage Hall", Price: 200000, Phone: "03001234567"}
	repo := &memRepo{venues: map[string]models.Venue{
		open.ID.Hex():   open,
		closed.ID.Hex(): closed,
	}}

	venueSvc := venue.NewVenueService(repo, nil, payment.DefaultThresholds, zap.NewNop())
	refs := payment.NewSeededReferenceGenerator(time.Now, 1)
	checkoutSvc := checkout.NewCheckoutService(venueSvc, refs, payment.DefaultLinkBuilder(), []string{"Heritage Hall"}, zap.NewNop())

	vh := handlers.NewVenueHandler(venueSvc)
	ch := handlers.NewCheckoutHandler(checkoutSvc)
	hb := &handlers.HandlerBundle{
		ListVenuesHandler:      vh.ListVenuesHandler,
		GetVenueHandler:        vh.GetVenueHandler,
		CreateVenueHandler:     vh.CreateVenueHandler,
		PrepareCheckoutHandler: ch.PrepareCheckoutHandler,
		QRCodeHandler:          ch.QRCodeHandler,
	}

	r := gin.New()
	RegisterRoutes(r, hb)
	return r, open.ID, closed.ID
}

func do(r *gin.Engine, method, path, ua string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutEndpointMobile(t *testing.T) {
	r, open, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/venues/"+open.Hex()+"/checkout", iphoneUA, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	var co models.Checkout
	if err := json.Unmarshal(w.Body.Bytes(), &co); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !co.Mobile || !strings.HasPrefix(co.DeepLink, "easypaisa://payment?") {
		t.Fatalf("expected mobile deep link, got %+v", co)
	}
	if !strings.HasPrefix(co.BookingReference, "BK-"+strings.ToUpper(open.Hex()[:4])+"-") {
		t.Fatalf("reference = %s", co.BookingReference)
	}
}

func TestCheckoutEndpointDesktop(t *testing.T) {
	r, open, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/venues/"+open.Hex()+"/checkout", "Mozilla/5.0 (X11; Linux x86_64)", nil)
	var co models.Checkout
	_ = json.Unmarshal(w.Body.Bytes(), &co)
	if co.DeepLink != "tel:03001234567" {
		t.Fatalf("expected dial link, got %q", co.DeepLink)
	}
}

func TestCheckoutEndpointErrors(t *testing.T) {
	r, _, closed := newTestRouter(t)

	if w := do(r, http.MethodGet, "/api/venues/"+closed.Hex()+"/checkout", iphoneUA, nil); w.Code != http.StatusConflict {
		t.Fatalf("payment-disabled venue: status = %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/venues/"+primitive.NewObjectID().Hex()+"/checkout", iphoneUA, nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown venue: status = %d", w.Code)
	}
}

func TestQRCodeEndpoint(t *testing.T) {
	r, open, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/venues/"+open.Hex()+"/checkout/qr.png?reference=BK-TEST-1-ABCD", "", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("status = %d content-type = %s", w.Code, w.Header().Get("Content-Type"))
	}

	w = do(r, http.MethodGet, "/api/venues/"+open.Hex()+"/checkout/qr.png", "", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("missing reference: status = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/api/venues/"+open.Hex()+"/checkout/qr.png?reference=BK-TEST-1-ABCD%0AAmount:%20PKR%201", "", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("reference with injected line: status = %d", w.Code)
	}
}

func TestVenueEndpoints(t *testing.T) {
	r, open, _ := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/venues?category=middle", "", nil)
	var list []models.VenueSummary
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Lakeside Lawn" {
		t.Fatalf("unexpected list: %+v", list)
	}

	w = do(r, http.MethodGet, "/api/venues?category=high", "", nil)
	list = nil
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Heritage Hall" || list[0].Category != "High" {
		t.Fatalf("unexpected high list: %+v", list)
	}

	if w := do(r, http.MethodGet, "/api/venues?category=luxury", "", nil); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown category: status = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/api/venues/"+open.Hex(), "", nil)
	var sum models.VenueSummary
	_ = json.Unmarshal(w.Body.Bytes(), &sum)
	if sum.Category != "Middle" || !sum.Bookable {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	body := []byte(`{"name":"Rooftop","price":30000,"phone":"03451234567","capacity":80}`)
	w = do(r, http.MethodPost, "/api/venues", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d body = %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/venues", "", []byte(`{"name":"NoPhone","price":30000}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("create without phone: status = %d", w.Code)
	}
}

func TestHealthRoute(t *testing.T) {
	r, _, _ := newTestRouter(t)
	if w := do(r, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
