package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// demoTasks are inserted with -demo, due relative to today.
var demoTasks = []struct {
	Name     string
	DueIn    int
	Priority model.Priority
}{
	{"Write the weekly report", 1, model.PriorityHigh},
	{"Book dentist appointment", 3, model.PriorityMedium},
	{"Clean up old branches", 7, model.PriorityLow},
}

func main() {
	cfg := config.Load()

	name := flag.String("name", cfg.AdminName, "admin user name")
	email := flag.String("email", cfg.AdminEmail, "admin email")
	password := flag.String("password", cfg.AdminPassword, "admin password")
	demo := flag.Bool("demo", false, "also insert demo tasks owned by the admin")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		log.Fatal("-name, -email and -password (or ADMIN_NAME, ADMIN_EMAIL, ADMIN_PASSWORD) are required")
	}

	log.Println("Starting seed script...")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close(gormDB)
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	authService := service.NewAuthService(repository.NewUserRepository(gormDB))

	admin, err := authService.EnsureAdmin(ctx, *name, *email, *password)
	if err != nil {
		log.Fatalf("Failed to ensure admin: %v", err)
	}
	log.Printf("Admin account ready: %s (id %d)", admin.Name, admin.ID)

	if !*demo {
		return
	}

	taskService := service.NewTaskService(repository.NewTaskRepository(gormDB))
	created, err := seedTasks(ctx, taskService, auth.Principal{Authenticated: true, UserID: admin.ID, Role: admin.Role})
	if err != nil {
		log.Fatalf("Failed to seed tasks: %v", err)
	}
	log.Printf("Seed completed successfully! Demo tasks created: %d", created)
}

func seedTasks(ctx context.Context, svc service.TaskService, owner auth.Principal) (int, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	created := 0
	for _, demo := range demoTasks {
		input := service.NewTask{
			Name:     demo.Name,
			DueDate:  today.AddDate(0, 0, demo.DueIn),
			Priority: demo.Priority,
		}
		if _, err := svc.Create(ctx, owner, input); err != nil {
			return created, fmt.Errorf("error creating task %q: %w", demo.Name, err)
		}
		created++
	}
	return created, nil
}
