// Package controllers wires the core collaborators together behind a
// singleton dependency-injection root.
package controllers

import (
	"sync"

	"github.com/sirupsen/logrus"

	"cinebook-lld/internal/catalog"
	"cinebook-lld/internal/ledger"
	"cinebook-lld/internal/registry"
	"cinebook-lld/internal/services"
)

// AppController owns every long-lived collaborator and exposes the single
// BookingService facade a front-end should talk to.
type AppController struct {
	catalog  *catalog.Catalog
	registry *registry.Registry
	ledger   *ledger.Ledger
	log      *logrus.Logger
	notifier services.BookingNotifier

	bookingService services.BookingService
}

var (
	instance *AppController
	once     sync.Once
)

// GetAppController returns the process-wide singleton, constructing it on
// first use.
func GetAppController() *AppController {
	once.Do(func() {
		instance = &AppController{}
		instance.initializeApp()
	})
	return instance
}

func (ac *AppController) initializeApp() {
	ac.initializeInfrastructure()
	ac.initializeServices()
}

// initializeInfrastructure creates the core's stateful collaborators: the
// catalog, the registry of per-screening lock-free state, the booking
// ledger, and the logger every component shares.
func (ac *AppController) initializeInfrastructure() {
	ac.catalog = catalog.New()
	ac.registry = registry.New()
	ac.ledger = ledger.New()

	ac.log = logrus.New()
	ac.log.SetFormatter(&logrus.JSONFormatter{})
}

func (ac *AppController) initializeServices() {
	ac.notifier = services.NewLoggingNotifier(ac.log)
	ac.bookingService = services.NewBookingService(ac.catalog, ac.registry, ac.ledger, ac.notifier, ac.log)
}

// GetBookingService returns the facade front-ends should use for every
// catalog, availability, and reservation operation.
func (ac *AppController) GetBookingService() services.BookingService {
	return ac.bookingService
}

// GetLogger exposes the shared logger so a front-end can log consistently.
func (ac *AppController) GetLogger() *logrus.Logger {
	return ac.log
}
