package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"careon/api-gateway/config"
	"careon/api-gateway/internal/authtoken"
	"careon/api-gateway/internal/cartstore"
	"careon/api-gateway/internal/notify"
	"careon/api-gateway/store"
)

// ApplicationHandler holds shared dependencies for handlers. Stores are
// interfaces so tests can swap in fakes.
type ApplicationHandler struct {
	Logger        *logrus.Logger
	Validate      *validator.Validate
	Pages         store.PageStore
	Products      store.ProductStore
	Reviews       store.ReviewStore
	Legal         store.LegalStore
	Consultations store.ConsultationStore
	Cart          *cartstore.Store
	Notifier      *notify.Dispatcher // nil when the SMS gateway is not configured
	Tokens        *authtoken.Scheme
	Admin         config.AdminConfig
	SMS           config.SMSConfig
	FrontendURL   string
}

// NewApplicationHandler creates an ApplicationHandler with a ready validator.
func NewApplicationHandler(logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Logger:   logger,
		Validate: validator.New(),
	}
}
