package tests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"foodcourt/backend"
	"foodcourt/session"
	"foodcourt/storefront-svc/internal/domain"
	"foodcourt/storefront-svc/internal/mocks"
	"foodcourt/storefront-svc/internal/service"
	"foodcourt/storefront-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStore(t *testing.T) *session.RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return session.NewRedisStore(client, time.Hour)
}

func newSession(t *testing.T) *session.Session {
	return session.New("3f1c2a8e-8d43-4d0e-9a55-1b2f9d6f0c11", newStore(t))
}

func staticCatalog() *service.CatalogService {
	return service.NewCatalogService(storage.NewStaticCatalog(), zap.NewNop())
}

func TestCatalogService_Restaurants(t *testing.T) {
	catalog := staticCatalog()
	ctx := context.Background()

	tests := []struct {
		name      string
		cuisine   string
		query     string
		wantNames []string
	}{
		{name: "cuisine filter", cuisine: "Indian", wantNames: []string{"Delhi Delights", "Spice Garden"}},
		{name: "query over description", query: "SUSHI", wantNames: []string{"Sushi Spot"}},
		{name: "query over cuisine", query: "vegan", wantNames: []string{"Green Bowl"}},
		{name: "cuisine and query", cuisine: "Coastal", query: "homely", wantNames: []string{"Mama Njeri Kitchen"}},
		{name: "no match", cuisine: "Chinese", wantNames: []string{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := catalog.Restaurants(ctx, testCase.cuisine, testCase.query)
			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, testCase.wantNames, names)
		})
	}

	assert.Len(t, catalog.Restaurants(ctx, "", ""), 8)
	assert.Len(t, catalog.Cuisines(ctx), 7)
}

func TestCatalogService_RestaurantDishSearch(t *testing.T) {
	catalog := staticCatalog()

	rest, err := catalog.Restaurant(context.Background(), "1", "fish")
	require.NoError(t, err)
	require.Len(t, rest.Dishes, 1)
	assert.Equal(t, "Grilled Fish", rest.Dishes[0].Name)

	_, err = catalog.Restaurant(context.Background(), "77", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_PopularDishes(t *testing.T) {
	popular := staticCatalog().PopularDishes(context.Background())

	require.Len(t, popular, 8)
	assert.Equal(t, domain.PopularDish{ID: "1", Name: "Grilled Chicken", Outlet: "Tamu Tamu Grills", Price: 1200}, popular[0])
}

func TestCatalogService_FetchFailureYieldsEmpty(t *testing.T) {
	source := mocks.NewCatalog(t)
	source.On("Restaurants", mock.Anything).Return(nil, errors.New("connection refused"))
	source.On("Tables", mock.Anything).Return(nil, errors.New("connection refused"))

	catalog := service.NewCatalogService(source, zap.NewNop())

	assert.Empty(t, catalog.Restaurants(context.Background(), "", ""))
	assert.NotNil(t, catalog.Tables(context.Background()))
}

func TestBackendCatalog_MapsOutlets(t *testing.T) {
	client := mocks.NewCatalogClient(t)
	client.On("Outlets", mock.Anything).Return([]backend.Outlet{{
		ID: 3, Name: "Burger Bros", Cuisine: &backend.Cuisine{ID: 2, Name: "Fast Food"},
		MenuItems: []backend.MenuItem{
			{ID: 7, Name: "Classic Burger", Price: 800},
			{ID: 9, Name: "Fries", Price: 400},
		},
	}}, nil)

	restaurants, err := storage.NewBackendCatalog(client).Restaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "Fast Food", restaurants[0].Cuisine)
	assert.Equal(t, "7", restaurants[0].Dishes[0].ID)
	for _, d := range restaurants[0].Dishes {
		assert.False(t, d.IsPopular, d.Name)
	}
}

func TestCartService_AddAndPersist(t *testing.T) {
	sess := newSession(t)
	carts := service.NewCartService(staticCatalog(), zap.NewNop())
	ctx := context.Background()

	_, err := carts.Add(ctx, sess, "1")
	require.NoError(t, err)
	_, err = carts.Add(ctx, sess, "1")
	require.NoError(t, err)
	cart, err := carts.Add(ctx, sess, "7")
	require.NoError(t, err)

	assert.Len(t, cart, 2)
	assert.Equal(t, 3200, cart.Total())

	raw, ok, err := sess.Get(ctx, session.KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"restaurantName":"Tamu Tamu Grills"`)

	reloaded := carts.Cart(ctx, sess)
	assert.Equal(t, cart, reloaded)
}

func TestCartService_Mutations(t *testing.T) {
	sess := newSession(t)
	carts := service.NewCartService(staticCatalog(), zap.NewNop())
	ctx := context.Background()

	_, err := carts.Add(ctx, sess, "1")
	require.NoError(t, err)

	cart, err := carts.SetQuantity(ctx, sess, "1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4800, cart.Total())

	cart, err = carts.SetNote(ctx, sess, "1", "extra spicy")
	require.NoError(t, err)
	assert.Equal(t, "extra spicy", cart[0].Notes)

	_, err = carts.SetQuantity(ctx, sess, "99", 2)
	assert.ErrorIs(t, err, domain.ErrDishNotFound)

	cart, err = carts.SetQuantity(ctx, sess, "1", 0)
	require.NoError(t, err)
	assert.Empty(t, cart)
	assert.Empty(t, carts.Cart(ctx, sess))
}

func TestCartService_UnknownDish(t *testing.T) {
	carts := service.NewCartService(staticCatalog(), zap.NewNop())

	_, err := carts.Add(context.Background(), newSession(t), "404")
	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}

func TestCartService_CorruptEntryLoadsEmpty(t *testing.T) {
	sess := newSession(t)
	ctx := context.Background()
	require.NoError(t, sess.Set(ctx, session.KeyCart, "{not json"))

	carts := service.NewCartService(staticCatalog(), zap.NewNop())
	assert.Empty(t, carts.Cart(ctx, sess))

	cart, err := carts.Add(ctx, sess, "7")
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestReservationService_SeedReservedTableRejected(t *testing.T) {
	reservations := service.NewReservationService(staticCatalog(), time.Hour, zap.NewNop())
	ctx := context.Background()

	_, err := reservations.Reserve(ctx, "s1", domain.ReservationRequest{
		TableID: "2", CustomerName: "Wanjiku", Date: "2025-03-01", Time: "19:00", PartySize: 2,
	})
	assert.ErrorIs(t, err, domain.ErrTableUnavailable)
	assert.Len(t, reservations.AvailableTables(ctx, "s1"), 14)
}

func TestReservationService_ReserveAndCancel(t *testing.T) {
	reservations := service.NewReservationService(staticCatalog(), time.Hour, zap.NewNop())
	ctx := context.Background()
	req := domain.ReservationRequest{TableID: "1", CustomerName: "Wanjiku", Date: "2025-03-01", Time: "19:00", PartySize: 2}

	res, err := reservations.Reserve(ctx, "s1", req)
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)

	_, err = reservations.Reserve(ctx, "s1", req)
	assert.ErrorIs(t, err, domain.ErrTableUnavailable)

	// Books are per session.
	_, err = reservations.Reserve(ctx, "s2", req)
	assert.NoError(t, err)

	assert.Len(t, reservations.AvailableTables(ctx, "s1"), 13)
	assert.Equal(t, 1, reservations.ActiveCount("s1"))

	cancelled, err := reservations.Cancel(ctx, "s1", res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, cancelled.Status)
	assert.Len(t, reservations.AvailableTables(ctx, "s1"), 14)
	assert.Len(t, reservations.Reservations("s1"), 1)
	assert.Equal(t, 0, reservations.ActiveCount("s1"))

	for _, view := range reservations.Tables(ctx, "s1") {
		if view.ID == "1" {
			assert.True(t, view.Selectable)
		}
	}
}

func TestReservationService_IdleBooksEvicted(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	reservations := service.NewReservationService(staticCatalog(), time.Hour, zap.NewNop()).
		WithClock(func() time.Time { return now })
	req := domain.ReservationRequest{TableID: "1", CustomerName: "Wanjiku", Date: "2025-03-01", Time: "19:00", PartySize: 2}

	_, err := reservations.Reserve(ctx, "s1", req)
	require.NoError(t, err)

	// Reads keep the book alive.
	now = now.Add(30 * time.Minute)
	assert.Equal(t, 1, reservations.ActiveCount("s1"))

	now = now.Add(40 * time.Minute)
	assert.Empty(t, reservations.Reservations("s2"))
	assert.Len(t, reservations.Reservations("s1"), 1)

	now = now.Add(2 * time.Hour)
	assert.Empty(t, reservations.Reservations("s2"))
	assert.Empty(t, reservations.Reservations("s1"))
	_, err = reservations.Reserve(ctx, "s1", req)
	assert.NoError(t, err)
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		dishes       []string
		req          domain.CheckoutRequest
		prepareMocks func(p *mocks.OrderPublisher)
		wantMessage  string
		wantTotal    int
	}{
		{
			name:        "empty cart",
			req:         domain.CheckoutRequest{Name: "Amina", Phone: "0712"},
			wantMessage: domain.MsgEmptyCart,
		},
		{
			name:        "missing phone",
			dishes:      []string{"1"},
			req:         domain.CheckoutRequest{Name: "Amina"},
			wantMessage: domain.MsgMissingCustomer,
		},
		{
			name:   "small order pays delivery",
			dishes: []string{"20", "21"},
			req:    domain.CheckoutRequest{Name: "Amina", Phone: "0712"},
			prepareMocks: func(p *mocks.OrderPublisher) {
				p.On("PublishOrder", ctx, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderPlaced && e.Total == 300 && e.Payment == domain.PaymentMpesa
				})).Return(nil).Once()
			},
			wantTotal: 300,
		},
		{
			name:   "publish failure does not fail the order",
			dishes: []string{"1", "7"},
			req:    domain.CheckoutRequest{Name: "Amina", Phone: "0712", PaymentMethod: "cash"},
			prepareMocks: func(p *mocks.OrderPublisher) {
				p.On("PublishOrder", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
			wantTotal: 2000,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			sess := newSession(t)
			carts := service.NewCartService(staticCatalog(), zap.NewNop())
			publisher := mocks.NewOrderPublisher(t)
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(publisher)
			}
			checkout := service.NewCheckoutService(carts, publisher, storage.NewReceiptQR("http://fc.test"), zap.NewNop())

			for _, id := range testCase.dishes {
				_, err := carts.Add(ctx, sess, id)
				require.NoError(t, err)
			}

			receipt, err := checkout.PlaceOrder(ctx, sess, testCase.req)
			if testCase.wantMessage != "" {
				var verr *domain.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, testCase.wantMessage, verr.Message)
				assert.Len(t, carts.Cart(ctx, sess), len(testCase.dishes))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.wantTotal, receipt.Total)
			assert.True(t, strings.HasPrefix(receipt.OrderNumber, "FC-"))
			assert.Len(t, receipt.OrderNumber, len("FC-20060102-ABCDEF12"))

			_, ok, _ := sess.Get(ctx, session.KeyCart)
			assert.False(t, ok)

			stored, err := checkout.Receipt(ctx, sess, receipt.OrderNumber)
			require.NoError(t, err)
			assert.Equal(t, receipt.Total, stored.Total)

			png, err := checkout.ReceiptQR(ctx, sess, receipt.OrderNumber)
			require.NoError(t, err)
			assert.Equal(t, []byte("\x89PNG"), png[:4])
		})
	}
}

func TestCheckoutService_UnknownReceipt(t *testing.T) {
	checkout := service.NewCheckoutService(
		service.NewCartService(staticCatalog(), zap.NewNop()), nil, mocks.NewQRGenerator(t), zap.NewNop())

	_, err := checkout.ReceiptQR(context.Background(), newSession(t), "FC-20240101-00000000")
	assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	validReq := func(password string) domain.SignupRequest {
		return domain.SignupRequest{
			FirstName: "Amina", LastName: "Odhiambo", Email: "amina@example.com", Phone: "0712345678",
			Password: password, ConfirmPassword: password,
		}
	}

	t.Run("short password rejected", func(t *testing.T) {
		sess := newSession(t)
		auth := service.NewAuthService(mocks.NewAuthBackend(t), false, zap.NewNop())

		_, err := auth.Signup(ctx, sess, validReq("abc12"))
		require.Error(t, err)
		assert.Equal(t, domain.MsgPasswordTooShort, err.Error())
		assert.False(t, sess.IsAuthenticated(ctx))
	})

	t.Run("local signup", func(t *testing.T) {
		sess := newSession(t)
		auth := service.NewAuthService(mocks.NewAuthBackend(t), false, zap.NewNop())

		result, err := auth.Signup(ctx, sess, validReq("abc123"))
		require.NoError(t, err)
		assert.Equal(t, "/", result.Redirect)
		assert.Equal(t, session.RoleCustomer, sess.Role(ctx))
		assert.Equal(t, "Amina Odhiambo", sess.Name(ctx))
	})

	t.Run("owner signup registers remotely", func(t *testing.T) {
		sess := newSession(t)
		api := mocks.NewAuthBackend(t)
		api.On("Register", ctx, backend.RegisterRequest{
			Name: "Amina Odhiambo", Email: "amina@example.com", Password: "abc123",
			PhoneNo: "0712345678", Role: domain.UserTypeOwner,
		}).Return(&backend.User{ID: 9}, nil).Once()
		auth := service.NewAuthService(api, true, zap.NewNop())

		req := validReq("abc123")
		req.UserType = domain.UserTypeOwner
		result, err := auth.Signup(ctx, sess, req)
		require.NoError(t, err)
		assert.Equal(t, "/owner-dashboard", result.Redirect)
		assert.Equal(t, session.RoleOwner, sess.Role(ctx))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("owner login", func(t *testing.T) {
		sess := newSession(t)
		api := mocks.NewAuthBackend(t)
		api.On("Login", ctx, backend.LoginRequest{Email: "john@tamugrills.com", Password: "secret1"}).
			Return(&backend.LoginResponse{
				AccessToken: "tok-1",
				User:        backend.User{ID: 1, Name: "John Kamau", Role: "admin"},
			}, nil).Once()

		result, err := service.NewAuthService(api, false, zap.NewNop()).
			Login(ctx, sess, domain.LoginRequest{Email: "john@tamugrills.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "/owner-dashboard", result.Redirect)
		assert.Equal(t, session.RoleOwner, sess.Role(ctx))

		token, _, _ := sess.Get(ctx, session.KeyAccessToken)
		assert.Equal(t, "tok-1", token)
		user, _, _ := sess.Get(ctx, session.KeyUser)
		assert.Contains(t, user, `"John Kamau"`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		api := mocks.NewAuthBackend(t)
		api.On("Login", ctx, mock.Anything).
			Return(nil, &backend.StatusError{StatusCode: 401, Message: "Invalid credentials"}).Once()

		_, err := service.NewAuthService(api, false, zap.NewNop()).
			Login(ctx, newSession(t), domain.LoginRequest{Email: "x@y.co", Password: "nope"})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("backend down", func(t *testing.T) {
		api := mocks.NewAuthBackend(t)
		api.On("Login", ctx, mock.Anything).Return(nil, errors.New("dial tcp: refused")).Once()

		_, err := service.NewAuthService(api, false, zap.NewNop()).
			Login(ctx, newSession(t), domain.LoginRequest{Email: "x@y.co", Password: "nope"})
		assert.ErrorIs(t, err, service.ErrBackendUnavailable)
	})
}

func TestAuthService_LogoutAndDarkMode(t *testing.T) {
	ctx := context.Background()
	sess := newSession(t)
	auth := service.NewAuthService(mocks.NewAuthBackend(t), false, zap.NewNop())

	require.NoError(t, sess.Set(ctx, session.KeyUserType, "customer"))
	require.NoError(t, sess.Set(ctx, session.KeyUserName, "Amina"))
	require.NoError(t, sess.Set(ctx, session.KeyCart, "[]"))
	require.NoError(t, sess.Set(ctx, session.KeyAccessToken, "tok-123"))
	require.NoError(t, sess.Set(ctx, session.KeyUser, `{"id":7,"role":"customer"}`))

	require.NoError(t, auth.Logout(ctx, sess))
	assert.False(t, sess.IsAuthenticated(ctx))
	for _, key := range []string{session.KeyCart, session.KeyAccessToken, session.KeyUser} {
		_, ok, _ := sess.Get(ctx, key)
		assert.False(t, ok, key)
	}

	on, err := auth.ToggleDarkMode(ctx, sess)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, auth.DarkMode(ctx, sess))

	on, err = auth.ToggleDarkMode(ctx, sess)
	require.NoError(t, err)
	assert.False(t, on)
}

func TestReviewService_Submit(t *testing.T) {
	reviews := service.NewReviewService(storage.SeedReviews())

	_, err := reviews.Submit(context.Background(), domain.ReviewInput{CustomerName: "Amina", Outlet: "Green Bowl", Rating: 6, Comment: "ok"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "rating", verr.Field)

	review, err := reviews.Submit(context.Background(), domain.ReviewInput{
		CustomerName: "Amina", Outlet: "Green Bowl", Rating: 5, Comment: "Great smoothie",
	})
	require.NoError(t, err)

	list := reviews.List()
	require.Len(t, list, 5)
	assert.Equal(t, review.ID, list[0].ID)
	assert.Equal(t, time.Now().Format("2006-01-02"), list[0].Date)
}

func TestNavigationService_Header(t *testing.T) {
	ctx := context.Background()
	carts := service.NewCartService(staticCatalog(), zap.NewNop())
	auth := service.NewAuthService(mocks.NewAuthBackend(t), false, zap.NewNop())
	nav := service.NewNavigationService(carts, auth)

	t.Run("anonymous", func(t *testing.T) {
		header := nav.Header(ctx, newSession(t), "/")
		require.Len(t, header.Links, 4)
		assert.Equal(t, "Login", header.Links[3].Label)
		assert.False(t, header.ShowCart)
	})

	t.Run("customer with cart", func(t *testing.T) {
		sess := newSession(t)
		require.NoError(t, sess.Set(ctx, session.KeyUserType, "customer"))
		require.NoError(t, sess.Set(ctx, session.KeyUserName, "Amina"))
		_, err := carts.Add(ctx, sess, "1")
		require.NoError(t, err)
		_, err = carts.Add(ctx, sess, "1")
		require.NoError(t, err)

		header := nav.Header(ctx, sess, "/order")
		require.Len(t, header.Links, 5)
		assert.Equal(t, "Hi, Amina", header.Links[3].Label)
		assert.Equal(t, "Checkout", header.Links[4].Label)
		assert.True(t, header.ShowCart)
		assert.Equal(t, 2, header.CartCount)
	})

	t.Run("owner on dashboard", func(t *testing.T) {
		sess := newSession(t)
		require.NoError(t, sess.Set(ctx, session.KeyUserType, "owner"))

		header := nav.Header(ctx, sess, "/owner-dashboard/menu")
		require.Len(t, header.Links, 5)
		assert.Equal(t, "Overview", header.Links[0].Label)
		assert.False(t, header.ShowCart)

		header = nav.Header(ctx, sess, "/")
		assert.Equal(t, "Home", header.Links[0].Label)
	})
}
