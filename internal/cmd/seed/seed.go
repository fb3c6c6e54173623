// Package seed loads YAML fixtures into a Codexly database.
//
// The tool exists for local development and demos: it provisions accounts
// with ready-made task lists and notebooks so the UI has something to show
// on first run.
package seed

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	authservice "github.com/codexly-app/codexly/internal/auth/service"
	"github.com/codexly-app/codexly/internal/auth/session"
	notedomain "github.com/codexly-app/codexly/internal/notes/domain"
	notesservice "github.com/codexly-app/codexly/internal/notes/service"
	entrypoint "github.com/codexly-app/codexly/internal/platform/cmd"
	"github.com/codexly-app/codexly/internal/storage/sqlite"
	taskdomain "github.com/codexly-app/codexly/internal/tasks/domain"
	tasksservice "github.com/codexly-app/codexly/internal/tasks/service"
	"gopkg.in/yaml.v3"
)

// Config holds seed command configuration.
type Config struct {
	DBPath      string `env:"DB_PATH" envDefault:"codexly.db"`
	FixturePath string
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Path to the SQLite database file")
	fs.StringVar(&cfg.FixturePath, "fixture", "", "Path to the YAML fixture file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Fixture is the root of a seed YAML document.
type Fixture struct {
	Users []UserFixture `yaml:"users"`
}

// UserFixture describes one seeded account and its records.
type UserFixture struct {
	Email    string        `yaml:"email"`
	Password string        `yaml:"password"`
	Tasks    []TaskFixture `yaml:"tasks"`
	Notes    []NoteFixture `yaml:"notes"`
}

// TaskFixture describes one seeded task.
type TaskFixture struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Done        bool   `yaml:"done"`
}

// NoteFixture describes one seeded note.
type NoteFixture struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Load reads and validates a fixture file.
func Load(path string) (Fixture, error) {
	if strings.TrimSpace(path) == "" {
		return Fixture{}, errors.New("fixture path is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var fixture Fixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	for idx, user := range fixture.Users {
		if strings.TrimSpace(user.Email) == "" {
			return Fixture{}, fmt.Errorf("fixture user %d: email is required", idx)
		}
		if strings.TrimSpace(user.Password) == "" {
			return Fixture{}, fmt.Errorf("fixture user %q: password is required", user.Email)
		}
		for taskIdx, task := range user.Tasks {
			if strings.TrimSpace(task.Title) == "" {
				return Fixture{}, fmt.Errorf("fixture user %q task %d: title is required", user.Email, taskIdx)
			}
		}
	}
	return fixture, nil
}

// Services bundles the write paths Apply seeds through.
type Services struct {
	Auth  *authservice.Service
	Tasks *tasksservice.Service
	Notes *notesservice.Service
}

// Apply seeds every fixture user and its records.
//
// Records go through the same services the web surface uses so seeded data
// obeys the ownership and default rules of real traffic.
func Apply(ctx context.Context, fixture Fixture, svcs Services) error {
	if svcs.Auth == nil || svcs.Tasks == nil || svcs.Notes == nil {
		return errors.New("all services are required")
	}
	for _, userFixture := range fixture.Users {
		u, _, err := svcs.Auth.SignUp(ctx, userFixture.Email, userFixture.Password, userFixture.Password)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", userFixture.Email, err)
		}
		for _, taskFixture := range userFixture.Tasks {
			task, err := svcs.Tasks.Create(ctx, u.ID, taskdomain.CreateTaskInput{
				Title:       taskFixture.Title,
				Description: taskFixture.Description,
			})
			if err != nil {
				return fmt.Errorf("seed task %q: %w", taskFixture.Title, err)
			}
			if taskFixture.Done {
				if _, err := svcs.Tasks.ToggleDone(ctx, task.ID, u.ID); err != nil {
					return fmt.Errorf("seed task %q: %w", taskFixture.Title, err)
				}
			}
		}
		for _, noteFixture := range userFixture.Notes {
			if _, err := svcs.Notes.Create(ctx, u.ID, notedomain.CreateNoteInput{
				Title: noteFixture.Title,
				Body:  noteFixture.Body,
			}); err != nil {
				return fmt.Errorf("seed note for %q: %w", userFixture.Email, err)
			}
		}
	}
	return nil
}

// Run loads the fixture and seeds the configured database.
func Run(ctx context.Context, cfg Config) error {
	fixture, err := Load(cfg.FixturePath)
	if err != nil {
		return err
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	// Seeding never issues browser sessions; the secret only satisfies the
	// auth service constructor.
	sessions, err := session.NewManager([]byte("seed-only"), time.Hour)
	if err != nil {
		return fmt.Errorf("configure sessions: %w", err)
	}

	if err := Apply(ctx, fixture, Services{
		Auth:  authservice.NewService(store, sessions),
		Tasks: tasksservice.NewService(store),
		Notes: notesservice.NewService(store),
	}); err != nil {
		return err
	}
	log.Printf("seeded %d users from %s", len(fixture.Users), cfg.FixturePath)
	return nil
}
