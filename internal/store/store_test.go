package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JRGCaponde/peixaria-backend/pkg/config"
	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
	"github.com/JRGCaponde/peixaria-backend/pkg/models"
	"github.com/JRGCaponde/peixaria-backend/pkg/security"
)

var testPasswordConfig = config.PasswordConfig{
	ArgonMemoryKB:    8,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     8,
	ArgonKeyLen:      16,
}

func testHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return hash
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(Params{
		AdminName:         "Administrador Principal",
		AdminEmail:        "admin@khrismir.ao",
		AdminPasswordHash: testHash(t, "segredo-admin"),
		AdminPhone:        "900000000",
		Settings:          DefaultSettings(),
	})
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	return st
}

func cartLine(productID uuid.UUID, unit enums.CartUnit, qty, price int64) models.CartItem {
	return models.CartItem{
		ProductID: productID,
		Name:      "Corvina",
		Quantity:  decimal.NewFromInt(qty),
		Unit:      unit,
		Price:     decimal.NewFromInt(price),
	}
}

func TestAddToCartMergesSameLine(t *testing.T) {
	st := newTestStore(t)
	productID := uuid.New()

	st.AddToCart(cartLine(productID, enums.CartUnitKg, 2, 3500))
	st.AddToCart(cartLine(productID, enums.CartUnitKg, 3, 3500))

	cart := st.Cart()
	if len(cart) != 1 {
		t.Fatalf("expected one merged line, got %d", len(cart))
	}
	if !cart[0].Quantity.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected merged quantity 5, got %s", cart[0].Quantity)
	}
}

func TestAddToCartDifferentUnitIsNewLine(t *testing.T) {
	st := newTestStore(t)
	productID := uuid.New()

	st.AddToCart(cartLine(productID, enums.CartUnitKg, 2, 3500))
	st.AddToCart(cartLine(productID, enums.CartUnitBox, 1, 30000))

	if got := len(st.Cart()); got != 2 {
		t.Fatalf("expected two lines for distinct units, got %d", got)
	}
}

func TestRemoveFromCart(t *testing.T) {
	st := newTestStore(t)
	first := uuid.New()
	second := uuid.New()

	st.AddToCart(cartLine(first, enums.CartUnitKg, 2, 3500))
	st.AddToCart(cartLine(second, enums.CartUnitBox, 1, 30000))

	st.RemoveFromCart(first, enums.CartUnitKg)

	cart := st.Cart()
	if len(cart) != 1 {
		t.Fatalf("expected one remaining line, got %d", len(cart))
	}
	if cart[0].ProductID != second {
		t.Fatalf("wrong line removed")
	}

	st.RemoveFromCart(uuid.New(), enums.CartUnitKg)
	if got := len(st.Cart()); got != 1 {
		t.Fatalf("removing absent line must be a no-op, cart has %d lines", got)
	}
}

func TestCartTotal(t *testing.T) {
	st := newTestStore(t)

	st.AddToCart(cartLine(uuid.New(), enums.CartUnitKg, 2, 3500))
	st.AddToCart(cartLine(uuid.New(), enums.CartUnitBox, 3, 10000))

	want := decimal.NewFromInt(2*3500 + 3*10000)
	if !st.CartTotal().Equal(want) {
		t.Fatalf("expected total %s, got %s", want, st.CartTotal())
	}
}

func TestPlaceOrderDefaults(t *testing.T) {
	st := newTestStore(t)
	st.AddToCart(cartLine(uuid.New(), enums.CartUnitKg, 2, 3500))

	order := st.PlaceOrder(OrderDraft{PaymentMethod: enums.PaymentMethodCashOnDelivery})

	if order.CustomerID != models.GuestCustomerID {
		t.Fatalf("anonymous session must produce guest order, got %q", order.CustomerID)
	}
	if order.CustomerName != "Consumidor" {
		t.Fatalf("unexpected fallback name %q", order.CustomerName)
	}
	if order.Status != enums.OrderStatusPending {
		t.Fatalf("new orders start Pendente, got %s", order.Status)
	}
	if !order.Total.Equal(decimal.NewFromInt(7000)) {
		t.Fatalf("expected computed total 7000, got %s", order.Total)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected cart snapshot of one line, got %d", len(order.Items))
	}
	if len(st.Cart()) != 0 {
		t.Fatal("placement must clear the cart")
	}
}

func TestPlaceOrderDraftOverridesDefaults(t *testing.T) {
	st := newTestStore(t)
	st.AddToCart(cartLine(uuid.New(), enums.CartUnitKg, 1, 3500))

	total := decimal.NewFromInt(9999)
	order := st.PlaceOrder(OrderDraft{
		CustomerID:   "balcao",
		CustomerName: "Venda ao Balcão",
		Total:        &total,
		Status:       enums.OrderStatusDelivered,
	})

	if order.CustomerID != "balcao" || order.CustomerName != "Venda ao Balcão" {
		t.Fatalf("draft identity must win, got %q/%q", order.CustomerID, order.CustomerName)
	}
	if !order.Total.Equal(total) {
		t.Fatalf("draft total must win, got %s", order.Total)
	}
	if order.Status != enums.OrderStatusDelivered {
		t.Fatalf("draft status must win, got %s", order.Status)
	}
}

func TestPlaceOrderUsesSignedInCustomer(t *testing.T) {
	st := newTestStore(t)
	customer := models.Customer{
		ID:           uuid.New(),
		Name:         "Maria dos Santos",
		Email:        "maria@example.ao",
		PasswordHash: testHash(t, "senha-maria"),
		JoinDate:     time.Now(),
	}
	st.AddCustomer(customer)
	if !st.LoginCustomer("maria@example.ao", "senha-maria") {
		t.Fatal("customer login should succeed")
	}

	st.AddToCart(cartLine(uuid.New(), enums.CartUnitKg, 1, 3500))
	order := st.PlaceOrder(OrderDraft{})

	if order.CustomerID != customer.ID.String() {
		t.Fatalf("expected session customer id, got %q", order.CustomerID)
	}
	if order.CustomerName != "Maria dos Santos" {
		t.Fatalf("expected session customer name, got %q", order.CustomerName)
	}
}

func TestOrdersMostRecentFirst(t *testing.T) {
	st := newTestStore(t)

	st.AddToCart(cartLine(uuid.New(), enums.CartUnitKg, 1, 100))
	first := st.PlaceOrder(OrderDraft{})
	st.AddToCart(cartLine(uuid.New(), enums.CartUnitKg, 1, 200))
	second := st.PlaceOrder(OrderDraft{})

	orders := st.Orders()
	if len(orders) != 2 {
		t.Fatalf("expected two orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Fatal("orders must be prepended, most recent first")
	}
	if first.ID == second.ID {
		t.Fatal("order ids must be unique")
	}
}

func TestSetOrderStatusLaxTransitions(t *testing.T) {
	st := newTestStore(t)
	st.AddToCart(cartLine(uuid.New(), enums.CartUnitKg, 1, 100))
	order := st.PlaceOrder(OrderDraft{})

	updated, ok := st.SetOrderStatus(order.ID, enums.OrderStatusDelivered)
	if !ok || updated.Status != enums.OrderStatusDelivered {
		t.Fatalf("expected jump to Entregue, got ok=%v status=%s", ok, updated.Status)
	}

	updated, ok = st.SetOrderStatus(order.ID, enums.OrderStatusPending)
	if !ok || updated.Status != enums.OrderStatusPending {
		t.Fatalf("expected backwards move to Pendente, got ok=%v status=%s", ok, updated.Status)
	}

	if _, ok := st.SetOrderStatus("ORD-MISSING1", enums.OrderStatusCancelled); ok {
		t.Fatal("unknown order id must be a no-op")
	}
}

func TestLoginReplacesSession(t *testing.T) {
	st := newTestStore(t)
	st.AddCustomer(models.Customer{
		ID:           uuid.New(),
		Name:         "Maria dos Santos",
		Email:        "maria@example.ao",
		PasswordHash: testHash(t, "senha-maria"),
	})

	if !st.LoginCustomer("maria@example.ao", "senha-maria") {
		t.Fatal("customer login should succeed")
	}
	if !st.LoginAdmin("admin@khrismir.ao", "segredo-admin") {
		t.Fatal("admin login should succeed")
	}

	sess := st.Session()
	if sess.Kind != enums.ActorKindAdmin {
		t.Fatalf("expected admin session, got %s", sess.Kind)
	}
	if sess.Customer != nil || sess.Staff != nil {
		t.Fatal("admin session must not retain the previous identity")
	}
}

func TestFailedLoginLeavesSessionUntouched(t *testing.T) {
	st := newTestStore(t)
	if !st.LoginAdmin("admin@khrismir.ao", "segredo-admin") {
		t.Fatal("admin login should succeed")
	}

	if st.LoginAdmin("admin@khrismir.ao", "errada") {
		t.Fatal("wrong password must fail")
	}
	if st.LoginStaff("ninguem@khrismir.ao", "x") {
		t.Fatal("unknown staff must fail")
	}
	if st.LoginCustomer("ninguem@example.ao", "x") {
		t.Fatal("unknown customer must fail")
	}

	if sess := st.Session(); sess.Kind != enums.ActorKindAdmin {
		t.Fatalf("failed logins must leave the session alone, got %s", sess.Kind)
	}
}

func TestLogoutResetsToAnonymous(t *testing.T) {
	st := newTestStore(t)
	if !st.LoginAdmin("admin@khrismir.ao", "segredo-admin") {
		t.Fatal("admin login should succeed")
	}

	st.Logout()
	st.Logout()

	if sess := st.Session(); sess.Kind != enums.ActorKindAnonymous {
		t.Fatalf("expected anonymous after logout, got %s", sess.Kind)
	}
}

func TestBootstrapManagerCanLoginAsStaff(t *testing.T) {
	st := newTestStore(t)

	if !st.LoginStaff("admin@khrismir.ao", "segredo-admin") {
		t.Fatal("seeded manager should log in through the staff path")
	}
	sess := st.Session()
	if sess.Kind != enums.ActorKindStaff || sess.Staff == nil {
		t.Fatalf("expected staff session, got %+v", sess)
	}
	if sess.Staff.Role != enums.EmployeeRoleManager {
		t.Fatalf("expected Gerente, got %s", sess.Staff.Role)
	}
}

func TestReplaceSettingsIsWholesale(t *testing.T) {
	st := newTestStore(t)

	st.ReplaceSettings(models.ShopSettings{Name: "Khrismir 2"})

	got := st.Settings()
	if got.Name != "Khrismir 2" {
		t.Fatalf("expected replaced name, got %q", got.Name)
	}
	if got.Address != "" || got.IsOpen || got.IVAEnabled {
		t.Fatal("replace must not merge fields from the previous value")
	}
	if !got.BaseDeliveryFee.IsZero() {
		t.Fatalf("expected zero delivery fee after replace, got %s", got.BaseDeliveryFee)
	}
}

func TestUpdateProductReplacesByID(t *testing.T) {
	st := newTestStore(t)
	product := models.Product{
		ID:         uuid.New(),
		Name:       "Garoupa",
		Category:   enums.FishCategoryFresh,
		PricePerKg: decimal.NewFromInt(4500),
	}
	st.AddProduct(product)

	product.Name = "Garoupa Grande"
	product.PricePerKg = decimal.NewFromInt(5000)
	if !st.UpdateProduct(product) {
		t.Fatal("update of existing product should succeed")
	}

	found, ok := st.FindProduct(product.ID)
	if !ok || found.Name != "Garoupa Grande" {
		t.Fatalf("expected replaced product, got ok=%v name=%q", ok, found.Name)
	}

	if st.UpdateProduct(models.Product{ID: uuid.New()}) {
		t.Fatal("unknown product id must be a no-op")
	}
}

func TestEmployeeRoster(t *testing.T) {
	st := newTestStore(t)
	employee := models.Employee{
		ID:     uuid.New(),
		Name:   "João Vendedor",
		Email:  "joao@khrismir.ao",
		Role:   enums.EmployeeRoleSeller,
		Status: enums.EmployeeStatusActive,
	}
	st.AddEmployee(employee)

	employee.Status = enums.EmployeeStatusInactive
	if !st.UpdateEmployee(employee) {
		t.Fatal("roster update should succeed")
	}
	found, ok := st.FindEmployee(employee.ID)
	if !ok || found.Status != enums.EmployeeStatusInactive {
		t.Fatalf("expected Inativo after update, got ok=%v status=%s", ok, found.Status)
	}

	if !st.RemoveEmployee(employee.ID) {
		t.Fatal("removal of existing employee should succeed")
	}
	if st.RemoveEmployee(employee.ID) {
		t.Fatal("second removal must be a no-op")
	}
	if len(st.Employees()) != 1 {
		t.Fatalf("only the bootstrap manager should remain, roster has %d", len(st.Employees()))
	}
}

func TestNotificationsNewestFirstAndMarkRead(t *testing.T) {
	st := newTestStore(t)

	first := st.AddNotification(models.Notification{Title: "Primeira", Type: enums.NotificationTypeStatusUpdate})
	second := st.AddNotification(models.Notification{Title: "Segunda", Type: enums.NotificationTypeStatusUpdate})

	list := st.Notifications()
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatal("notifications must be newest first")
	}
	if first.ID == uuid.Nil || first.Timestamp.IsZero() {
		t.Fatal("store must assign id and timestamp")
	}
	if st.UnreadNotificationCount() != 2 {
		t.Fatalf("expected 2 unread, got %d", st.UnreadNotificationCount())
	}

	st.MarkNotificationsRead()
	if st.UnreadNotificationCount() != 0 {
		t.Fatalf("expected 0 unread after mark, got %d", st.UnreadNotificationCount())
	}
	for _, n := range st.Notifications() {
		if !n.Read {
			t.Fatal("mark read is all-or-nothing")
		}
	}
}

func TestReadAccessorsReturnCopies(t *testing.T) {
	st := newTestStore(t)
	st.AddToCart(cartLine(uuid.New(), enums.CartUnitKg, 1, 100))

	cart := st.Cart()
	cart[0].Quantity = decimal.NewFromInt(99)
	if st.Cart()[0].Quantity.Equal(decimal.NewFromInt(99)) {
		t.Fatal("mutating the returned slice must not touch store state")
	}

	sess := st.Session()
	sess.Kind = enums.ActorKindAdmin
	if st.Session().Kind == enums.ActorKindAdmin {
		t.Fatal("session accessor must return a copy")
	}
}
