package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	CreateGame(ctx context.Context) (entity.GameSnapshot, error)
	GetGame(ctx context.Context, gameID string) (entity.GameSnapshot, error)
	MakeMove(ctx context.Context, gameID string, pitNumber int) (entity.GameSnapshot, error)
	DeleteGame(ctx context.Context, gameID string) error
}

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	rootAddress string

	router *mux.Router
}

func New(logger *slog.Logger, gameUseCase gameUseCase, rootAddress string) *Server {
	server := &Server{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
		rootAddress: rootAddress,

		router: mux.NewRouter(),
	}

	server.router.HandleFunc("/ping", server.handlePing).Methods(http.MethodGet)
	server.router.HandleFunc("/games", server.handleCreateGame).Methods(http.MethodPost)
	server.router.HandleFunc("/games/{gameId}", server.handleGetGame).Methods(http.MethodGet)
	server.router.HandleFunc("/games/{gameId}", server.handleDeleteGame).Methods(http.MethodDelete)
	server.router.HandleFunc("/games/{gameId}/pits/{pitId}", server.handleMakeMove).Methods(http.MethodPut)

	return server
}

// Handler - the router wrapped with CORS and panic recovery.
func (that *Server) Handler() http.Handler {
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(that.logger.Handler(), slog.LevelError)),
	)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return recovery(cors(that.router))
}

// Start - serves the REST API until ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	that.logger.Info("starting REST server", "port", port)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
