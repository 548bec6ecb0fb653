package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"classhub/internal/config"
	"classhub/internal/database"
	"classhub/internal/handler"
	"classhub/internal/middleware"
	"classhub/internal/repository"
	"classhub/internal/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("migrate database", "error", err)
		os.Exit(1)
	}

	users := repository.NewUserRepository(db)
	classrooms := repository.NewClassroomRepository(db)
	students := repository.NewStudentRepository(db)

	sessions := session.NewManager(cfg.SessionSecret)

	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(users, sessions)
	classroom := handler.NewClassroomHandler(classrooms, sessions)
	student := handler.NewStudentHandler(classrooms, students, sessions)
	export := handler.NewExportHandler(students)

	r := chi.NewRouter()

	r.Get("/", home.Landing)
	r.Get("/login", auth.LoginPage)
	r.Post("/login", auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessions))

		// Signup sits behind the auth guard on purpose: the original
		// product shipped that way, so only an existing account can
		// register the next one.
		r.Get("/signup", auth.SignupPage)
		r.Post("/signup", auth.Signup)
		r.Get("/account=added", auth.SignupSuccess)

		r.Get("/profile", auth.Profile)
		r.Get("/logout", auth.Logout)

		r.Get("/create", classroom.CreatePage)
		r.Post("/create", classroom.Create)
		r.Get("/viewanimals", classroom.List)

		r.Get("/zookeepers", student.List)
		r.Get("/{classroomID}/addzookeeper", student.AddPage)
		r.Post("/{classroomID}/addzookeeper", student.Add)

		r.Get("/export/students.xlsx", export.Students)
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
