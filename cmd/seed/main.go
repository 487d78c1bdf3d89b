// Command seed loads the demo accounts and marketing site content straight
// into MongoDB. It is idempotent: existing users are kept, and sections and
// settings are only inserted into an empty database.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"volta-cms/internal/clients/mongo"
	"volta-cms/internal/config"
	"volta-cms/internal/logger"
	sectionsService "volta-cms/internal/services/sections"
	settingsService "volta-cms/internal/services/settings"
	usersService "volta-cms/internal/services/users"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	demoUsers = flag.Int("demo-users", 0, "How many extra fake user accounts to create")
	seedRand  = flag.Int64("seed", 0, "Random seed for fake data (0 = time-based)")
)

type userSeed struct {
	Email       string
	Password    string
	FullName    string
	Role        usersService.Role
	DateOfBirth time.Time
}

type sectionSeed struct {
	Title       string
	Description string
}

type settingSeed struct {
	SectionTitle string
	Key          string
	Value        string
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

var userSeeds = []userSeed{
	{Email: "admin@test.com", Password: "123456789", FullName: "System Administrator", Role: usersService.RoleAdmin, DateOfBirth: date("1990-01-01")},
	{Email: "user@test.com", Password: "123456789", FullName: "Regular User", Role: usersService.RoleUser, DateOfBirth: date("1995-05-15")},
	{Email: "user1@test.com", Password: "123456789", FullName: "Regular User", Role: usersService.RoleUser, DateOfBirth: date("1995-05-15")},
	{Email: "user2@test.com", Password: "123456789", FullName: "Regular User", Role: usersService.RoleUser, DateOfBirth: date("1995-05-15")},
}

var sectionSeeds = []sectionSeed{
	{Title: "background", Description: "Background settings for the site"},
	{Title: "navbar", Description: "Navbar settings for the site"},
	{Title: "main_slider", Description: "Main slider settings for the site"},
	{Title: "who_we_are", Description: "Who we are settings for the site"},
	{Title: "our_core_values", Description: "Our core values settings for the site"},
	{Title: "our_projects", Description: "Our projects settings for the site"},
	{Title: "need_technical_support", Description: "Need technical support settings for the site"},
	{Title: "why_we_are_the_best", Description: "Why we are the best settings for the site"},
	{Title: "our_products", Description: "Our products settings for the site"},
	{Title: "our_geographical_coverage", Description: "Our geographical coverage settings for the site"},
	{Title: "frequently_asked_questions", Description: "Frequently asked questions settings for the site"},
	{Title: "our_brands", Description: "Our brands settings for the site"},
	{Title: "footer", Description: "Footer settings for the site"},
}

var settingSeeds = []settingSeed{
	{SectionTitle: "background", Key: "background_image", Value: "/images/background.jpg"},

	{SectionTitle: "navbar", Key: "logo", Value: "/images/logo.png"},
	{SectionTitle: "navbar", Key: "nav_text", Value: "Volta Generators FZE"},
	{SectionTitle: "navbar", Key: "menu_items", Value: mustJSON([]string{"Home", "About", "Products", "Contact"})},
	{SectionTitle: "navbar", Key: "search_placeholder", Value: "Search..."},

	{SectionTitle: "main_slider", Key: "slides", Value: mustJSON(slides(10))},

	{SectionTitle: "who_we_are", Key: "title", Value: "Who We Are"},
	{SectionTitle: "who_we_are", Key: "description", Value: "We are offering Tower light and Diesel Generator Sets from 4.5 kVA to 4125 kVA in single unit and higher ratings generators in multiple unit configurations."},
	{SectionTitle: "who_we_are", Key: "our_vision", Value: "Our Vision"},
	{SectionTitle: "who_we_are", Key: "our_vision_description", Value: "Volta Generators is a distinguished manufacturer specializing in the production of high-quality diesel generating sets and comprehensive power systems."},
	{SectionTitle: "who_we_are", Key: "our_mission", Value: "Our Mission"},
	{SectionTitle: "who_we_are", Key: "our_mission_description", Value: "Our mission is to provide reliable and efficient power solutions that empower businesses and communities worldwide."},

	{SectionTitle: "our_core_values", Key: "title", Value: "Our Core Values"},
	{SectionTitle: "our_core_values", Key: "honesty", Value: "Honesty"},
	{SectionTitle: "our_core_values", Key: "quality", Value: "Quality"},
	{SectionTitle: "our_core_values", Key: "innovation", Value: "Innovation"},

	{SectionTitle: "our_projects", Key: "title", Value: "Our Projects"},
	{SectionTitle: "need_technical_support", Key: "title", Value: "Need Technical Support?"},
	{SectionTitle: "need_technical_support", Key: "phone", Value: "+971 4 000 0000"},
	{SectionTitle: "why_we_are_the_best", Key: "title", Value: "Why We Are The Best"},
	{SectionTitle: "our_products", Key: "title", Value: "Our Products"},
	{SectionTitle: "our_geographical_coverage", Key: "title", Value: "Our Geographical Coverage"},
	{SectionTitle: "frequently_asked_questions", Key: "title", Value: "Frequently Asked Questions"},
	{SectionTitle: "our_brands", Key: "title", Value: "Our Brands"},

	{SectionTitle: "footer", Key: "copyright", Value: "Volta Generators FZE. All rights reserved."},
	{SectionTitle: "footer", Key: "address", Value: "Jebel Ali Free Zone, Dubai, UAE"},
}

type slide struct {
	Description string `json:"description"`
	Image       string `json:"image"`
}

func slides(n int) []slide {
	out := make([]slide, n)
	for i := range out {
		out[i] = slide{
			Description: fmt.Sprintf("Slide %d", i+1),
			Image:       fmt.Sprintf("/images/generators/generator-%d.webp", i+1),
		}
	}
	return out
}

func main() {
	flag.Parse()

	if *seedRand != 0 {
		gofakeit.Seed(*seedRand)
	} else {
		gofakeit.Seed(time.Now().UnixNano())
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "FATAL: config:", err)
		os.Exit(1)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "FATAL: logger:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if _, _, err := mongo.Init(ctx, cfg, log); err != nil {
		log.Error("mongo init failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongo.Shutdown(ctx); err != nil {
			log.Error("mongo shutdown failed", "error", err)
		}
	}()

	usersRepo, err := mongo.NewUsersRepo(ctx, mongo.DB())
	if err != nil {
		log.Error("users repo", "error", err)
		os.Exit(1)
	}
	sectionsRepo, err := mongo.NewSectionsRepo(ctx, mongo.DB())
	if err != nil {
		log.Error("sections repo", "error", err)
		os.Exit(1)
	}
	settingsRepo, err := mongo.NewSettingsRepo(ctx, mongo.DB())
	if err != nil {
		log.Error("settings repo", "error", err)
		os.Exit(1)
	}

	usersSvc := usersService.NewService(usersRepo, cfg, log)
	sectionsSvc := sectionsService.NewService(sectionsRepo, log)
	settingsSvc := settingsService.NewService(settingsRepo, sectionsSvc, log)

	if err := seedUsers(ctx, usersSvc); err != nil {
		log.Error("seeding users failed", "error", err)
		os.Exit(1)
	}
	if err := seedSections(ctx, sectionsSvc); err != nil {
		log.Error("seeding site sections failed", "error", err)
		os.Exit(1)
	}
	if err := seedSettings(ctx, settingsSvc); err != nil {
		log.Error("seeding settings failed", "error", err)
		os.Exit(1)
	}
	if *demoUsers > 0 {
		if err := seedFakeUsers(ctx, usersSvc, *demoUsers); err != nil {
			log.Error("seeding fake users failed", "error", err)
			os.Exit(1)
		}
	}

	log.Info("database seeding completed")
}

func seedUsers(ctx context.Context, svc *usersService.Service) error {
	for _, u := range userSeeds {
		dob := u.DateOfBirth
		_, err := svc.Create(ctx, usersService.CreateUserRequest{
			Email:       u.Email,
			Password:    u.Password,
			FullName:    u.FullName,
			DateOfBirth: &dob,
			Role:        u.Role,
		})
		if err != nil {
			if errors.Is(err, usersService.ErrEmailTaken) {
				logger.L().Info("user already present, skipping", "email", u.Email)
				continue
			}
			return err
		}
		logger.L().Info("seeded user", "email", u.Email, "role", u.Role)
	}
	return nil
}

func seedSections(ctx context.Context, svc *sectionsService.Service) error {
	existing, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.L().Info("site sections already present, skipping", "count", len(existing))
		return nil
	}

	for _, s := range sectionSeeds {
		if _, err := svc.Create(ctx, sectionsService.CreateSectionRequest{
			Title:       s.Title,
			Description: s.Description,
		}); err != nil {
			return err
		}
	}
	logger.L().Info("seeded site sections", "count", len(sectionSeeds))
	return nil
}

func seedSettings(ctx context.Context, svc *settingsService.Service) error {
	existing, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.L().Info("settings already present, skipping", "count", len(existing))
		return nil
	}

	for _, s := range settingSeeds {
		if _, err := svc.Create(ctx, settingsService.CreateSettingRequest{
			SectionTitle: s.SectionTitle,
			Key:          s.Key,
			Value:        s.Value,
		}); err != nil {
			return err
		}
	}
	logger.L().Info("seeded settings", "count", len(settingSeeds))
	return nil
}

func seedFakeUsers(ctx context.Context, svc *usersService.Service, n int) error {
	created := 0
	for created < n {
		dob := gofakeit.DateRange(date("1960-01-01"), date("2005-12-31"))
		_, err := svc.Create(ctx, usersService.CreateUserRequest{
			Email:       gofakeit.Email(),
			Password:    "Password123",
			FullName:    gofakeit.Name(),
			DateOfBirth: &dob,
			Role:        usersService.RoleUser,
		})
		if err != nil {
			if errors.Is(err, usersService.ErrEmailTaken) {
				continue // collision, roll another
			}
			return err
		}
		created++
	}
	logger.L().Info("seeded fake users", "count", created)
	return nil
}
