package server

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Daskott/keepme/contacts"
	"github.com/Daskott/keepme/dispatch"
	"github.com/Daskott/keepme/shared"
	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server exposes one contact directory over HTTP.
// The directory is only touched while holding mu.
type Server struct {
	mu         sync.Mutex
	directory  *contacts.Directory
	dispatcher dispatch.Dispatcher
	logg       *zap.SugaredLogger
	validate   *validator.Validate
}

func NewServer(directory *contacts.Directory, dispatcher dispatch.Dispatcher, logg *zap.SugaredLogger) *Server {
	return &Server{
		directory:  directory,
		dispatcher: dispatcher,
		logg:       logg,
		validate:   shared.NewValidator(),
	}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.loggingMiddleware)
	router.Use(jsonContentTypeMiddleware)

	router.HandleFunc("/health", s.health).Methods("GET")
	router.HandleFunc("/preview", s.previewPhone).Methods("GET")

	router.HandleFunc("/contacts", s.listContacts).Methods("GET")
	router.HandleFunc("/contacts", s.addContact).Methods("POST")
	router.HandleFunc("/contacts/{id}", s.deleteContact).Methods("DELETE")

	router.HandleFunc("/emergency", s.emergencySummary).Methods("GET")
	router.HandleFunc("/emergency", s.sendEmergency).Methods("POST")

	return router
}

// Start serves the directory until the process receives SIGINT or SIGTERM.
func Start(config *shared.Config, directory *contacts.Directory, logg *zap.SugaredLogger) {
	srv := NewServer(directory, dispatch.NewLogDispatcher(logg), logg)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%v", config.Server.Port),
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go srv.serve(httpServer)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	srv.cleanup(httpServer)
}
