// Package apitest is an in-memory storefront API backed by a chi router. It
// answers with the same envelopes as the real backend and is used by tests
// and by the CLI's local demo server.
package apitest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/pkg/middleware"
)

// SessionCookie is the name of the session cookie the backend sets.
const SessionCookie = "session"

// MsgInternal is the message of the envelope answered when a handler panics.
const MsgInternal = "an internal error occurred"

var allowedImageExt = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

type account struct {
	user     domain.User
	password string
}

type failure struct {
	status  int
	message string
}

// Backend holds the fake API state.
type Backend struct {
	mu        sync.Mutex
	products  []domain.Product
	accounts  []account
	addresses map[domain.ID][]domain.Address
	orders    []domain.Order
	sessions  map[string]domain.ID
	failures  map[string]failure
	calls     []string
	nextID    int
	router    chi.Router
}

// NewBackend creates an empty backend.
func NewBackend(logger *slog.Logger) *Backend {
	b := &Backend{
		addresses: make(map[domain.ID][]domain.Address),
		sessions:  make(map[string]domain.ID),
		failures:  make(map[string]failure),
		nextID:    100,
	}
	b.router = b.routes(logger)
	return b
}

// ServeHTTP implements http.Handler.
func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

// Server is a Backend listening on a local httptest server.
type Server struct {
	*Backend
	*httptest.Server
}

// NewServer starts a backend on a random local port. Close it when done.
func NewServer(logger *slog.Logger) *Server {
	b := NewBackend(logger)
	return &Server{Backend: b, Server: httptest.NewServer(b)}
}

func (b *Backend) routes(logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusInternalServerError, MsgInternal)
	}))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront-fake-api"))
	r.Use(middleware.Tracing("storefront-fake-api"))

	b.handle(r, http.MethodGet, "/api/products", b.listProducts)
	b.handle(r, http.MethodGet, "/api/products/{id}", b.getProduct)
	b.handle(r, http.MethodGet, "/api/products/{id}/related", b.relatedProducts)

	b.handle(r, http.MethodPost, "/api/admin/products", b.createProduct)
	b.handle(r, http.MethodPut, "/api/admin/products/{id}", b.updateProduct)
	b.handle(r, http.MethodDelete, "/api/admin/products/{id}", b.deleteProduct)
	b.handle(r, http.MethodPost, "/api/admin/upload-product-image/{id}", b.uploadImage)

	b.handle(r, http.MethodGet, "/api/admin/stats", b.stats)
	b.handle(r, http.MethodGet, "/api/admin/users", b.listUsers)
	b.handle(r, http.MethodGet, "/api/admin/users/{id}", b.getUser)
	b.handle(r, http.MethodGet, "/api/admin/users/{id}/addresses", b.userAddresses)
	b.handle(r, http.MethodGet, "/api/admin/users/{id}/orders", b.userOrders)
	b.handle(r, http.MethodDelete, "/api/admin/users/{id}", b.deleteUser)

	b.handle(r, http.MethodGet, "/api/admin/orders", b.listOrders)
	b.handle(r, http.MethodPut, "/api/admin/orders/{id}/status", b.updateOrderStatus)
	b.handle(r, http.MethodDelete, "/api/admin/orders/{id}", b.deleteOrder)
	b.handle(r, http.MethodGet, "/api/orders/{id}", b.getOrder)

	b.handle(r, http.MethodPost, "/api/login", b.login)
	b.handle(r, http.MethodPost, "/api/register", b.register)
	b.handle(r, http.MethodPost, "/api/logout", b.logout)
	b.handle(r, http.MethodGet, "/api/check-auth", b.checkAuth)
	b.handle(r, http.MethodGet, "/api/user", b.currentUser)
	b.handle(r, http.MethodPut, "/api/user", b.updateCurrentUser)
	return r
}

// handle registers h, recording each call and applying injected failures.
func (b *Backend) handle(r chi.Router, method, pattern string, h http.HandlerFunc) {
	key := method + " " + pattern
	r.Method(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, key)
		f, failed := b.failures[key]
		delete(b.failures, key)
		b.mu.Unlock()

		if failed {
			writeError(w, f.status, f.message)
			return
		}
		h(w, req)
	}))
}

// ---------------------------------------------------------------------------
// Test controls
// ---------------------------------------------------------------------------

// FailNext makes the next call to method+pattern answer success=false with
// the given status and message.
func (b *Backend) FailNext(method, pattern string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+pattern] = failure{status: status, message: message}
}

// Calls returns the "METHOD pattern" of every request served so far.
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.calls)
}

// CallCount counts calls to method+pattern.
func (b *Backend) CallCount(method, pattern string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c == method+" "+pattern {
			n++
		}
	}
	return n
}

// SeedProducts adds products. Products without an id get one.
func (b *Backend) SeedProducts(ps ...domain.Product) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range ps {
		if p.ID == "" {
			p.ID = b.newID()
		}
		if p.ImageURL == "" {
			p.ImageURL = "/api/product-image/" + p.ID.String()
		}
		b.products = append(b.products, p)
	}
}

// SeedUser adds an account that can log in with password.
func (b *Backend) SeedUser(u domain.User, password string) domain.ID {
	b.mu.Lock()
	defer b.mu.Unlock()
	if u.ID == "" {
		u.ID = b.newID()
	}
	b.accounts = append(b.accounts, account{user: u, password: password})
	return u.ID
}

// SeedAddresses adds saved addresses for a user.
func (b *Backend) SeedAddresses(userID domain.ID, addrs ...domain.Address) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.addresses[userID] = append(b.addresses[userID], addrs...)
}

// SeedOrders adds orders.
func (b *Backend) SeedOrders(orders ...domain.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range orders {
		if o.ID == "" {
			o.ID = b.newID()
		}
		if o.Status == "" {
			o.Status = domain.OrderPending
		}
		b.orders = append(b.orders, o)
	}
}

// Product returns the stored product with id.
func (b *Backend) Product(id domain.ID) (domain.Product, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.productIndex(id)
	if i < 0 {
		return domain.Product{}, false
	}
	return b.products[i], true
}

// ProductCount is the number of stored products.
func (b *Backend) ProductCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.products)
}

// Order returns the stored order with id.
func (b *Backend) Order(id domain.ID) (domain.Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.orderIndex(id)
	if i < 0 {
		return domain.Order{}, false
	}
	return b.orders[i], true
}

// User returns the stored account with id.
func (b *Backend) User(id domain.ID) (domain.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.accountIndex(id)
	if i < 0 {
		return domain.User{}, false
	}
	return b.accounts[i].user, true
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

func (b *Backend) listProducts(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeOK(w, map[string]any{"products": append([]domain.Product{}, b.products...)})
}

func (b *Backend) getProduct(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.productIndex(pathID(r))
	if i < 0 {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeOK(w, map[string]any{"product": b.products[i]})
}

func (b *Backend) relatedProducts(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.productIndex(pathID(r))
	if i < 0 {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	self := b.products[i]
	related := []domain.Product{}
	for _, p := range b.products {
		if p.ID != self.ID && p.CanonicalGender() == self.CanonicalGender() && len(related) < 4 {
			related = append(related, p)
		}
	}
	writeOK(w, map[string]any{"related_products": related})
}

func (b *Backend) createProduct(w http.ResponseWriter, r *http.Request) {
	p, msg := productFromForm(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	p.ID = b.newID()
	p.IsNew = true
	if _, hdr, err := r.FormFile("image"); err == nil {
		if !allowedImage(hdr.Filename) {
			writeError(w, http.StatusBadRequest, "Invalid image format")
			return
		}
	}
	p.ImageURL = "/api/product-image/" + p.ID.String()
	b.products = append(b.products, p)
	writeOK(w, map[string]any{"message": "Product added successfully", "product_id": p.ID})
}

func (b *Backend) updateProduct(w http.ResponseWriter, r *http.Request) {
	p, msg := productFromForm(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.productIndex(pathID(r))
	if i < 0 {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	p.ID = b.products[i].ID
	p.ImageURL = b.products[i].ImageURL
	p.IsNew = b.products[i].IsNew
	b.products[i] = p
	writeOK(w, map[string]any{"message": "Product updated successfully", "product_id": p.ID})
}

func (b *Backend) deleteProduct(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.productIndex(pathID(r))
	if i < 0 {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	b.products = slices.Delete(b.products, i, i+1)
	writeOK(w, map[string]any{"message": "Product deleted successfully"})
}

func (b *Backend) uploadImage(w http.ResponseWriter, r *http.Request) {
	_, hdr, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	if !allowedImage(hdr.Filename) {
		writeError(w, http.StatusBadRequest, "Invalid image format")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.productIndex(pathID(r))
	if i < 0 {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	url := "/api/product-image/" + b.products[i].ID.String() + "?v=" + uuid.New().String()[:8]
	b.products[i].ImageURL = url
	writeOK(w, map[string]any{"message": "Image uploaded successfully", "image_url": url})
}

func productFromForm(r *http.Request) (domain.Product, string) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return domain.Product{}, "Invalid form data"
	}
	p := domain.Product{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Gender:      strings.TrimSpace(r.FormValue("gender")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Volume:      strings.TrimSpace(r.FormValue("volume")),
		Longevity:   strings.TrimSpace(r.FormValue("longevity")),
	}
	if p.Category == "" {
		p.Category = "Perfume"
	}
	rawPrice := strings.TrimSpace(r.FormValue("price"))
	if p.Title == "" || p.Gender == "" || rawPrice == "" || p.Description == "" {
		return p, "Title, gender, price, and description are required"
	}
	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil || price <= 0 {
		return p, "Price must be greater than 0"
	}
	p.Price = price
	return p, ""
}

func allowedImage(name string) bool {
	return slices.Contains(allowedImageExt, strings.ToLower(filepath.Ext(name)))
}

// ---------------------------------------------------------------------------
// Users and orders
// ---------------------------------------------------------------------------

func (b *Backend) stats(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var revenue float64
	for _, o := range b.orders {
		if o.Status != domain.OrderCancelled {
			revenue += o.TotalAmount
		}
	}
	stats := domain.DashboardStats{
		TotalProducts:  len(b.products),
		TotalUsers:     len(b.accounts),
		TotalOrders:    len(b.orders),
		TotalRevenue:   revenue,
		MonthlyRevenue: revenue,
		RecentProducts: []domain.RecentProduct{},
		RecentUsers:    []domain.RecentUser{},
	}
	for i := len(b.products) - 1; i >= 0 && len(stats.RecentProducts) < 5; i-- {
		p := b.products[i]
		stats.RecentProducts = append(stats.RecentProducts, domain.RecentProduct{ID: p.ID, Title: p.Title, Price: p.Price, ImageURL: p.ImageURL})
	}
	for i := len(b.accounts) - 1; i >= 0 && len(stats.RecentUsers) < 5; i-- {
		u := b.accounts[i].user
		stats.RecentUsers = append(stats.RecentUsers, domain.RecentUser{ID: u.ID, Name: u.FullName(), Email: u.Email})
	}
	writeOK(w, map[string]any{"stats": stats})
}

func (b *Backend) listUsers(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	users := make([]domain.User, 0, len(b.accounts))
	for _, a := range b.accounts {
		users = append(users, a.user)
	}
	writeOK(w, map[string]any{"users": users})
}

func (b *Backend) getUser(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.accountIndex(pathID(r))
	if i < 0 {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeOK(w, map[string]any{"user": b.accounts[i].user})
}

func (b *Backend) userAddresses(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	addrs := slices.Clone(b.addresses[pathID(r)])
	if addrs == nil {
		addrs = []domain.Address{}
	}
	writeOK(w, map[string]any{"addresses": addrs})
}

func (b *Backend) userOrders(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := pathID(r)
	orders := []domain.Order{}
	for _, o := range b.orders {
		if o.UserID == id {
			orders = append(orders, o)
		}
	}
	writeOK(w, map[string]any{"orders": orders})
}

func (b *Backend) deleteUser(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := pathID(r)
	i := b.accountIndex(id)
	if i < 0 {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	b.accounts = slices.Delete(b.accounts, i, i+1)
	delete(b.addresses, id)
	b.orders = slices.DeleteFunc(b.orders, func(o domain.Order) bool { return o.UserID == id })
	writeOK(w, map[string]any{"message": "User deleted successfully"})
}

func (b *Backend) listOrders(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeOK(w, map[string]any{"orders": append([]domain.Order{}, b.orders...)})
}

func (b *Backend) getOrder(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.orderIndex(pathID(r))
	if i < 0 {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	writeOK(w, map[string]any{"order": b.orders[i]})
}

func (b *Backend) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !slices.Contains(domain.OrderStatuses, domain.OrderStatus(in.Status)) {
		writeError(w, http.StatusBadRequest, "Invalid order status")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.orderIndex(pathID(r))
	if i < 0 {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	b.orders[i].Status = domain.OrderStatus(in.Status)
	writeOK(w, map[string]any{"message": "Order status updated successfully"})
}

func (b *Backend) deleteOrder(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.orderIndex(pathID(r))
	if i < 0 {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	b.orders = slices.Delete(b.orders, i, i+1)
	writeOK(w, map[string]any{"message": "Order deleted successfully"})
}

// ---------------------------------------------------------------------------
// Account
// ---------------------------------------------------------------------------

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if (in.Email == "" && in.Phone == "") || in.Password == "" {
		writeError(w, http.StatusBadRequest, "Provide email or phone, and password")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.accounts {
		matched := (in.Email != "" && a.user.Email == in.Email) || (in.Email == "" && a.user.Phone == in.Phone)
		if matched && a.password == in.Password {
			b.startSession(w, a.user.ID)
			writeOK(w, map[string]any{"message": "Login successful!", "user": sessionUser(a.user)})
			return
		}
	}
	writeError(w, http.StatusUnauthorized, "Invalid credentials")
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.accounts {
		if a.user.Email == in.Email {
			writeError(w, http.StatusBadRequest, "Email address is already registered")
			return
		}
		if in.Phone != "" && a.user.Phone == in.Phone {
			writeError(w, http.StatusBadRequest, "Phone number is already registered")
			return
		}
	}
	u := domain.User{ID: b.newID(), FirstName: in.FirstName, LastName: in.LastName, Email: in.Email, Phone: in.Phone}
	b.accounts = append(b.accounts, account{user: u, password: in.Password})
	b.startSession(w, u.ID)
	writeOK(w, map[string]any{"message": "Registration successful!", "user": sessionUser(u)})
}

func (b *Backend) logout(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	if c, err := r.Cookie(SessionCookie); err == nil {
		delete(b.sessions, c.Value)
	}
	b.mu.Unlock()
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
	writeOK(w, map[string]any{"message": "Logged out successfully"})
}

func (b *Backend) checkAuth(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.sessionAccount(r)
	if i < 0 {
		writeOK(w, map[string]any{"authenticated": false})
		return
	}
	u := b.accounts[i].user
	writeOK(w, map[string]any{
		"authenticated": true,
		"user":          map[string]any{"id": u.ID, "email": u.Email, "name": u.FullName()},
	})
}

func (b *Backend) currentUser(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.sessionAccount(r)
	if i < 0 {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeOK(w, map[string]any{"user": b.accounts[i].user})
}

func (b *Backend) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FirstName          string `json:"first_name"`
		LastName           string `json:"last_name"`
		Phone              string `json:"phone"`
		DateOfBirth        string `json:"date_of_birth"`
		Gender             string `json:"gender"`
		PreferredFragrance string `json:"preferred_fragrance"`
		CurrentPassword    string `json:"current_password"`
		Password           string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.sessionAccount(r)
	if i < 0 {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	a := &b.accounts[i]
	if in.Password != "" {
		if in.CurrentPassword != a.password {
			writeError(w, http.StatusBadRequest, "Current password is incorrect")
			return
		}
		a.password = in.Password
	}
	a.user.FirstName = in.FirstName
	a.user.LastName = in.LastName
	a.user.Phone = in.Phone
	a.user.DateOfBirth = in.DateOfBirth
	a.user.Gender = in.Gender
	a.user.PreferredFragrance = in.PreferredFragrance
	writeOK(w, map[string]any{"message": "Profile updated successfully"})
}

func (b *Backend) startSession(w http.ResponseWriter, id domain.ID) {
	token := uuid.New().String()
	b.sessions[token] = id
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: token, Path: "/", HttpOnly: true})
}

func (b *Backend) sessionAccount(r *http.Request) int {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return -1
	}
	id, ok := b.sessions[c.Value]
	if !ok {
		return -1
	}
	return b.accountIndex(id)
}

func sessionUser(u domain.User) domain.SessionUser {
	return domain.SessionUser{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (b *Backend) newID() domain.ID {
	b.nextID++
	return domain.ID(strconv.Itoa(b.nextID))
}

func (b *Backend) productIndex(id domain.ID) int {
	return slices.IndexFunc(b.products, func(p domain.Product) bool { return p.ID == id })
}

func (b *Backend) orderIndex(id domain.ID) int {
	return slices.IndexFunc(b.orders, func(o domain.Order) bool { return o.ID == id })
}

func (b *Backend) accountIndex(id domain.ID) int {
	return slices.IndexFunc(b.accounts, func(a account) bool { return a.user.ID == id })
}

func pathID(r *http.Request) domain.ID {
	return domain.ID(chi.URLParam(r, "id"))
}

func writeOK(w http.ResponseWriter, payload map[string]any) {
	payload["success"] = true
	writeJSON(w, http.StatusOK, payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
