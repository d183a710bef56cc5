package router

import "net/http"

type AuthRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type AccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type TransferRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type PaymentRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type TelecomRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type CardRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type BeneficiaryRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type RateRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(
	authController AuthRouteRegistrar,
	accountController AccountRouteRegistrar,
	transferController TransferRouteRegistrar,
	paymentController PaymentRouteRegistrar,
	telecomController TelecomRouteRegistrar,
	cardController CardRouteRegistrar,
	beneficiaryController BeneficiaryRouteRegistrar,
	rateController RateRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	if authController != nil {
		authController.RegisterRoutes(mux, authMiddleware)
	}
	if accountController != nil {
		accountController.RegisterRoutes(mux, authMiddleware)
	}
	if transferController != nil {
		transferController.RegisterRoutes(mux, authMiddleware)
	}
	if paymentController != nil {
		paymentController.RegisterRoutes(mux, authMiddleware)
	}
	if telecomController != nil {
		telecomController.RegisterRoutes(mux, authMiddleware)
	}
	if cardController != nil {
		cardController.RegisterRoutes(mux, authMiddleware)
	}
	if beneficiaryController != nil {
		beneficiaryController.RegisterRoutes(mux, authMiddleware)
	}
	if rateController != nil {
		rateController.RegisterRoutes(mux, authMiddleware)
	}

	return mux
}
