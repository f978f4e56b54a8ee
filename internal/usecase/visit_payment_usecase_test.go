package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"workshop_visits/internal/domain/entities"
	mock_interfaces "workshop_visits/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	repo    *mock_interfaces.MockIVisitPaymentRepository
	visits  *mock_interfaces.MockIVisitRepository
	gateway *mock_interfaces.MockIPaymentGateway
	uc      *VisitPaymentUseCase
}

func newPaymentFixture(t *testing.T, settings PaymentSettings) *paymentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	clock := mock_interfaces.NewMockIClock(ctrl)
	clock.EXPECT().Now().Return(fixedNow).AnyTimes()
	f := &paymentFixture{
		repo:    mock_interfaces.NewMockIVisitPaymentRepository(ctrl),
		visits:  mock_interfaces.NewMockIVisitRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.uc = NewVisitPaymentUseCase(f.repo, f.visits, f.gateway, clock, settings)
	return f
}

// readyVisit has one approved line (24600 gross) and one rejected line.
func readyVisit(t *testing.T) entities.Visit {
	t.Helper()
	v := storedVisit(t, storedItem(t, "a", entities.ServiceItemApproved), storedItem(t, "b", entities.ServiceItemRejected))
	ready, err := v.MarkAsReadyForPickup("user-1", fixedNow)
	if err != nil {
		t.Fatalf("MarkAsReadyForPickup: %v", err)
	}
	return ready
}

func TestVisitPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty visit id", func(t *testing.T) {
		uc := NewVisitPaymentUseCase(nil, nil, nil, nil, PaymentSettings{})
		_, err := uc.CreateAndApprove(context.Background(), "studio-1", " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentVisitID) {
			t.Fatalf("expected ErrInvalidPaymentVisitID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewVisitPaymentUseCase(nil, nil, nil, nil, PaymentSettings{})
		_, err := uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewVisitPaymentUseCase(nil, nil, nil, nil, PaymentSettings{})
		_, err := uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewVisitPaymentUseCase(nil, nil, nil, nil, PaymentSettings{})
		_, err := uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestVisitPaymentUseCase_CreateAndApprove_VisitChecks(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("visit repo error", func(t *testing.T) {
		f := newPaymentFixture(t, PaymentSettings{})
		f.visits.EXPECT().FindByID(gomock.Any(), "visit-1", "studio-1").Return(entities.Visit{}, errors.New("db"))

		_, err := f.uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("visit not found", func(t *testing.T) {
		f := newPaymentFixture(t, PaymentSettings{})
		f.visits.EXPECT().FindByID(gomock.Any(), "visit-1", "studio-1").Return(entities.Visit{}, nil)

		_, err := f.uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", payload)
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("visit still in progress", func(t *testing.T) {
		f := newPaymentFixture(t, PaymentSettings{})
		f.visits.EXPECT().FindByID(gomock.Any(), "visit-1", "studio-1").Return(storedVisit(t, storedItem(t, "a", entities.ServiceItemApproved)), nil)

		_, err := f.uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", payload)
		if !errors.Is(err, ErrVisitNotBillable) {
			t.Fatalf("expected ErrVisitNotBillable, got %v", err)
		}
	})

	t.Run("nothing billable", func(t *testing.T) {
		f := newPaymentFixture(t, PaymentSettings{})
		v, err := storedVisit(t, storedItem(t, "b", entities.ServiceItemRejected)).MarkAsReadyForPickup("user-1", fixedNow)
		if err != nil {
			t.Fatalf("MarkAsReadyForPickup: %v", err)
		}
		f.visits.EXPECT().FindByID(gomock.Any(), "visit-1", "studio-1").Return(v, nil)

		_, err = f.uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", payload)
		if !errors.Is(err, ErrNothingToCharge) {
			t.Fatalf("expected ErrNothingToCharge, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		f := newPaymentFixture(t, PaymentSettings{})
		f.visits.EXPECT().FindByID(gomock.Any(), "visit-1", "studio-1").Return(readyVisit(t), nil)

		_, err := f.uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer outside sandbox", func(t *testing.T) {
		f := newPaymentFixture(t, PaymentSettings{AccessToken: "APP_USR-live"})
		f.visits.EXPECT().FindByID(gomock.Any(), "visit-1", "studio-1").Return(readyVisit(t), nil)

		_, err := f.uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestVisitPaymentUseCase_CreateAndApprove_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPaymentFixture(t, PaymentSettings{})
			f.visits.EXPECT().FindByID(gomock.Any(), "visit-1", "studio-1").Return(readyVisit(t), nil)
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := f.uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestVisitPaymentUseCase_CreateAndApprove_Success(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusApproved},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusDenied},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPaymentFixture(t, PaymentSettings{
				AccessToken:     "TEST-token",
				TestPayerUserID: "123",
				TestPayerEmail:  "sandbox@test.com",
			})
			f.visits.EXPECT().FindByID(gomock.Any(), "visit-1", "studio-1").Return(readyVisit(t), nil)
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "visit-1" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "Visit VIS/2026/00001" {
						t.Fatalf("description not set: %v", body["description"])
					}
					if body["transaction_amount"] != float64(246) {
						t.Fatalf("transaction_amount should be the billable gross, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, json.RawMessage(`{"id":123}`), nil
				},
			)
			f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.VisitPayment{})).DoAndReturn(
				func(_ context.Context, p entities.VisitPayment) (entities.VisitPayment, error) {
					if p.ID != "pay-1" || p.VisitID != "visit-1" || p.StudioID != "studio-1" || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.AmountGross.Cents() != 24600 || !p.Date.Equal(fixedNow) {
						t.Fatalf("unexpected amount/date: %+v", p)
					}
					return p, nil
				},
			)

			res, err := f.uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"}}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		f := newPaymentFixture(t, PaymentSettings{Mock: true})
		f.visits.EXPECT().FindByID(gomock.Any(), "visit-1", "studio-1").Return(readyVisit(t), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.VisitPayment) (entities.VisitPayment, error) {
			return p, nil
		})

		res, err := f.uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusApproved || res.ProviderPayload["status"] != "approved" {
			t.Fatalf("unexpected mock payment %+v", res)
		}
		if res.ProviderPayload["transaction_amount"] != float64(246) {
			t.Fatalf("unexpected mock amount %v", res.ProviderPayload["transaction_amount"])
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		f := newPaymentFixture(t, PaymentSettings{})
		f.visits.EXPECT().FindByID(gomock.Any(), "visit-1", "studio-1").Return(readyVisit(t), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.VisitPayment{}, errors.New("db-create"))

		_, err := f.uc.CreateAndApprove(context.Background(), "studio-1", "visit-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestVisitPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewVisitPaymentUseCase(nil, nil, nil, nil, PaymentSettings{})
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		f := newPaymentFixture(t, PaymentSettings{})
		f.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.VisitPayment{}, nil)

		_, err := f.uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrVisitPaymentNotFound) {
			t.Fatalf("expected ErrVisitPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		f := newPaymentFixture(t, PaymentSettings{})
		f.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.VisitPayment{ID: "id-1"}, nil)

		res, err := f.uc.GetByID(context.Background(), " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByVisitID invalid", func(t *testing.T) {
		uc := NewVisitPaymentUseCase(nil, nil, nil, nil, PaymentSettings{})
		_, err := uc.ListByVisitID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentVisitID) {
			t.Fatalf("expected ErrInvalidPaymentVisitID, got %v", err)
		}
	})

	t.Run("ListByVisitID success", func(t *testing.T) {
		f := newPaymentFixture(t, PaymentSettings{})
		f.repo.EXPECT().ListByVisitID(gomock.Any(), "visit-1").Return([]entities.VisitPayment{{ID: "p1", Date: fixedNow}}, nil)

		res, err := f.uc.ListByVisitID(context.Background(), " visit-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestVisitPaymentUseCase_NormalizeChargeRequest(t *testing.T) {
	sandbox := PaymentSettings{AccessToken: "TEST-abc"}
	sandboxWithUser := PaymentSettings{AccessToken: "TEST-abc", TestPayerUserID: "123", TestPayerEmail: "sandbox@test.com"}
	live := PaymentSettings{AccessToken: "APP_USR-live"}

	cases := []struct {
		name      string
		settings  PaymentSettings
		req       string
		wantErr   bool
		wantPayer map[string]any
	}{
		{name: "blank payment method", settings: sandbox, req: `{"payment_method_id":"  ","payer":{"email":"x@test.com"}}`, wantErr: true},
		{name: "payer is not an object", settings: sandbox, req: `{"payment_method_id":"pix","payer":"x@test.com"}`, wantErr: true},
		{name: "live payer without identity", settings: live, req: `{"payment_method_id":"pix","payer":{"id":null}}`, wantErr: true},
		{name: "numeric id identifies the payer", settings: live, req: `{"payment_method_id":"pix","payer":{"id":10}}`,
			wantPayer: map[string]any{"id": float64(10), "type": "customer"}},
		{name: "email kept as given", settings: sandboxWithUser, req: `{"payment_method_id":"pix","payer":{"id":"123","email":"x@test.com","type":"guest"}}`,
			wantPayer: map[string]any{"id": "123", "email": "x@test.com", "type": "guest"}},
		{name: "sandbox test user becomes its email", settings: sandboxWithUser, req: `{"payment_method_id":"pix","payer":{"id":123}}`,
			wantPayer: map[string]any{"email": "sandbox@test.com", "type": "customer"}},
		{name: "other sandbox ids stay", settings: sandboxWithUser, req: `{"payment_method_id":"pix","payer":{"id":"456"}}`,
			wantPayer: map[string]any{"id": "456", "type": "customer"}},
		{name: "missing payer gets the configured email", settings: sandboxWithUser, req: `{"payment_method_id":"pix"}`,
			wantPayer: map[string]any{"email": "sandbox@test.com", "type": "customer"}},
		{name: "missing payer gets the sandbox default", settings: sandbox, req: `{"payment_method_id":"pix","payer":null}`,
			wantPayer: map[string]any{"email": sandboxPayerEmail, "type": "customer"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req map[string]any
			if err := json.Unmarshal([]byte(tc.req), &req); err != nil {
				t.Fatalf("bad fixture: %v", err)
			}
			uc := NewVisitPaymentUseCase(nil, nil, nil, nil, tc.settings)

			err := uc.normalizeChargeRequest(req)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidMPPayload) {
					t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(req["payer"], tc.wantPayer) {
				t.Fatalf("payer = %v, want %v", req["payer"], tc.wantPayer)
			}
		})
	}
}

func TestClassifyGatewayError(t *testing.T) {
	cases := []struct {
		msg  string
		want error
	}{
		{`{"message":"Customer not found","status":400}`, ErrPaymentGatewayCustomerNotFound},
		{`{"cause":[{"code":2034}],"status":400}`, ErrPaymentGatewayInvalidUsers},
		{`{"error":"UNAUTHORIZED"}`, ErrPaymentGatewayUnauthorized},
		{`{"status":401}`, ErrPaymentGatewayUnauthorized},
		{`{"error":"bad_request"}`, ErrPaymentGatewayBadRequest},
	}
	for _, tc := range cases {
		if got := classifyGatewayError(errors.New(tc.msg)); !errors.Is(got, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.msg, got, tc.want)
		}
	}

	timeout := errors.New("dial tcp: i/o timeout")
	if got := classifyGatewayError(timeout); got != timeout {
		t.Fatalf("unclassified errors pass through, got %v", got)
	}
}
