package http

import (
	"net/http"

	"diagnolab/internal/delivery/http/handler"
	"diagnolab/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	bookingHandler       *handler.BookingHandler
	vendorBookingHandler *handler.VendorBookingHandler
	labTestHandler       *handler.LabTestHandler
	organHandler         *handler.OrganHandler
	packageHandler       *handler.PackageHandler
	couponHandler        *handler.CouponHandler
	faqHandler           *handler.FaqHandler
	vendorHandler        *handler.VendorHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	vendorBookingHandler *handler.VendorBookingHandler,
	labTestHandler *handler.LabTestHandler,
	organHandler *handler.OrganHandler,
	packageHandler *handler.PackageHandler,
	couponHandler *handler.CouponHandler,
	faqHandler *handler.FaqHandler,
	vendorHandler *handler.VendorHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		bookingHandler:       bookingHandler,
		vendorBookingHandler: vendorBookingHandler,
		labTestHandler:       labTestHandler,
		organHandler:         organHandler,
		packageHandler:       packageHandler,
		couponHandler:        couponHandler,
		faqHandler:           faqHandler,
		vendorHandler:        vendorHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/vendor", r.authHandler.RegisterVendor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Public catalog routes
	api.HandleFunc("/tests", r.labTestHandler.GetTests).Methods(http.MethodGet)
	api.HandleFunc("/tests/grouped", r.labTestHandler.GetTestsGrouped).Methods(http.MethodGet)
	api.HandleFunc("/tests/{id}", r.labTestHandler.GetTest).Methods(http.MethodGet)
	api.HandleFunc("/organs", r.organHandler.GetOrgans).Methods(http.MethodGet)
	api.HandleFunc("/organs/{id}", r.organHandler.GetOrgan).Methods(http.MethodGet)
	api.HandleFunc("/packages", r.packageHandler.GetPackages).Methods(http.MethodGet)
	api.HandleFunc("/packages/{id}", r.packageHandler.GetPackage).Methods(http.MethodGet)
	api.HandleFunc("/faqs", r.faqHandler.GetFaqs).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/checkout", r.bookingHandler.Checkout).Methods(http.MethodPost)
	patient.HandleFunc("/bookings", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)
	patient.HandleFunc("/bookings/grouped", r.bookingHandler.GetMyBookingsGrouped).Methods(http.MethodGet)
	patient.HandleFunc("/bookings/{id}", r.bookingHandler.GetMyBooking).Methods(http.MethodGet)

	// Vendor routes (protected - approved vendors only)
	vendor := api.PathPrefix("/vendor").Subrouter()
	vendor.Use(r.authMiddleware.Authenticate)
	vendor.Use(middleware.RequireApprovedVendor)
	vendor.HandleFunc("/bookings", r.vendorBookingHandler.GetBookings).Methods(http.MethodGet)
	vendor.HandleFunc("/bookings/grouped", r.vendorBookingHandler.GetBookingsGrouped).Methods(http.MethodGet)
	vendor.HandleFunc("/bookings/{id}", r.vendorBookingHandler.GetBooking).Methods(http.MethodGet)
	vendor.HandleFunc("/bookings/{id}/complete", r.vendorBookingHandler.CompleteBooking).Methods(http.MethodPost)
	vendor.HandleFunc("/bookings/{id}/cancel", r.vendorBookingHandler.CancelBooking).Methods(http.MethodPost)
	vendor.HandleFunc("/coupons/verify", r.vendorBookingHandler.VerifyCoupon).Methods(http.MethodPost)
	vendor.HandleFunc("/coupons", r.couponHandler.CreateCoupon).Methods(http.MethodPost)
	vendor.HandleFunc("/coupons", r.couponHandler.GetCoupons).Methods(http.MethodGet)
	vendor.HandleFunc("/tests", r.labTestHandler.CreateTest).Methods(http.MethodPost)
	vendor.HandleFunc("/tests", r.labTestHandler.GetMyTests).Methods(http.MethodGet)
	vendor.HandleFunc("/tests/{id}", r.labTestHandler.UpdateTest).Methods(http.MethodPut)
	vendor.HandleFunc("/tests/{id}", r.labTestHandler.DeleteTest).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Vendor approval queue (admin)
	admin.HandleFunc("/vendors", r.vendorHandler.GetVendors).Methods(http.MethodGet)
	admin.HandleFunc("/vendors/{id}", r.vendorHandler.GetVendor).Methods(http.MethodGet)
	admin.HandleFunc("/vendors/{id}/approve", r.vendorHandler.ApproveVendor).Methods(http.MethodPost)
	admin.HandleFunc("/vendors/{id}/reject", r.vendorHandler.RejectVendor).Methods(http.MethodPost)

	// Catalog management (admin)
	admin.HandleFunc("/organs", r.organHandler.CreateOrgan).Methods(http.MethodPost)
	admin.HandleFunc("/organs/{id}", r.organHandler.UpdateOrgan).Methods(http.MethodPut)
	admin.HandleFunc("/organs/{id}", r.organHandler.DeleteOrgan).Methods(http.MethodDelete)
	admin.HandleFunc("/tests", r.labTestHandler.CreateTest).Methods(http.MethodPost)
	admin.HandleFunc("/tests/{id}", r.labTestHandler.UpdateTest).Methods(http.MethodPut)
	admin.HandleFunc("/tests/{id}", r.labTestHandler.DeleteTest).Methods(http.MethodDelete)
	admin.HandleFunc("/packages", r.packageHandler.CreatePackage).Methods(http.MethodPost)
	admin.HandleFunc("/packages/{id}", r.packageHandler.UpdatePackage).Methods(http.MethodPut)
	admin.HandleFunc("/packages/{id}", r.packageHandler.DeletePackage).Methods(http.MethodDelete)

	// Coupon management (admin)
	admin.HandleFunc("/coupons", r.couponHandler.CreateCoupon).Methods(http.MethodPost)
	admin.HandleFunc("/coupons", r.couponHandler.GetCoupons).Methods(http.MethodGet)
	admin.HandleFunc("/coupons/{id}", r.couponHandler.GetCoupon).Methods(http.MethodGet)
	admin.HandleFunc("/coupons/{code}/expire", r.couponHandler.ExpireCoupon).Methods(http.MethodPost)

	// FAQ management (admin)
	admin.HandleFunc("/faqs", r.faqHandler.CreateFaq).Methods(http.MethodPost)
	admin.HandleFunc("/faqs/{id}", r.faqHandler.UpdateFaq).Methods(http.MethodPut)
	admin.HandleFunc("/faqs/{id}", r.faqHandler.DeleteFaq).Methods(http.MethodDelete)

	// Audit trail (admin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
