// Command adminctl drives the dashboard API from the terminal: log in,
// verify the stored session and inspect or prune the managed resources.
// It exercises the same gateway and stores the dashboard uses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/rootandbloom/garden-center/internal/client"
)

func main() {
	_ = godotenv.Load()

	base := os.Getenv("API_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("adminctl: %v", err)
	}
	gw := client.NewGateway(base)
	session := client.NewSessionStore(gw, &client.FileTokenStorage{
		Path: filepath.Join(home, ".garden-center", "token"),
	})

	if len(os.Args) < 2 {
		usage()
	}
	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		if len(os.Args) != 4 {
			usage()
		}
		if err := session.Login(ctx, os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("login failed: %v", err)
		}
		u := session.User()
		fmt.Printf("logged in as %s (%s)\n", u.Name, u.Role)

	case "verify":
		if session.VerifyAuth(ctx) {
			u := session.User()
			fmt.Printf("session valid: %s (%s)\n", u.Email, u.Role)
		} else {
			fmt.Println("no valid session")
			os.Exit(1)
		}

	case "logout":
		session.Logout()
		fmt.Println("logged out")

	case "banners":
		store := client.NewBannerStore(gw, session)
		runCollection(ctx, os.Args[2:], store.FetchAll, store.Delete, func() any { return store.Items() })

	case "classes":
		store := client.NewClassStore(gw, session)
		runCollection(ctx, os.Args[2:], store.FetchAll, store.Delete, func() any { return store.Items() })

	case "hours":
		store := client.NewHourStore(gw, session)
		runCollection(ctx, os.Args[2:], store.FetchAll, store.Delete, func() any { return store.Items() })

	case "page-content":
		store := client.NewPageContentStore(gw, session)
		runCollection(ctx, os.Args[2:], store.FetchAll, store.Delete, func() any { return store.Items() })

	case "registrations":
		registrations(ctx, gw, session, os.Args[2:])

	case "settings":
		store := client.NewSettingsStore(gw, session)
		if err := store.Fetch(ctx); err != nil {
			log.Fatalf("settings: %v", err)
		}
		dump(store.Settings())

	case "upload":
		if len(os.Args) != 3 {
			usage()
		}
		f, err := os.Open(os.Args[2])
		if err != nil {
			log.Fatalf("upload: %v", err)
		}
		defer f.Close()
		url, err := gw.UploadImage(ctx, session.Token(), filepath.Base(os.Args[2]), f)
		if err != nil {
			log.Fatalf("upload failed: %v", err)
		}
		fmt.Println(url)

	default:
		usage()
	}
}

// runCollection handles the list and delete subcommands shared by every
// collection resource.
func runCollection(ctx context.Context, args []string,
	fetch func(context.Context) error,
	del func(context.Context, string) error,
	items func() any) {
	if len(args) < 1 {
		usage()
	}
	switch args[0] {
	case "list":
		if err := fetch(ctx); err != nil {
			log.Fatalf("fetch failed: %v", err)
		}
		dump(items())
	case "delete":
		if len(args) != 2 {
			usage()
		}
		if err := del(ctx, args[1]); err != nil {
			log.Fatalf("delete failed: %v", err)
		}
		fmt.Println("deleted")
	default:
		usage()
	}
}

func registrations(ctx context.Context, gw *client.Gateway, session *client.SessionStore, args []string) {
	store := client.NewRegistrationStore(gw, session)
	if len(args) < 1 {
		usage()
	}
	switch args[0] {
	case "list":
		if err := store.FetchAll(ctx); err != nil {
			log.Fatalf("fetch failed: %v", err)
		}
		dump(store.Items())
	case "status":
		if len(args) != 3 {
			usage()
		}
		if err := store.UpdateStatus(ctx, args[1], args[2]); err != nil {
			log.Fatalf("status change failed: %v", err)
		}
		fmt.Println("updated")
	case "delete":
		if len(args) != 2 {
			usage()
		}
		if err := store.Delete(ctx, args[1]); err != nil {
			log.Fatalf("delete failed: %v", err)
		}
		fmt.Println("deleted")
	default:
		usage()
	}
}

func dump(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("adminctl: %v", err)
	}
	fmt.Println(string(out))
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  adminctl login <email> <password>
  adminctl verify
  adminctl logout
  adminctl settings
  adminctl banners|classes|hours|page-content list
  adminctl banners|classes|hours|page-content delete <id>
  adminctl registrations list
  adminctl registrations status <id> <pending|confirmed|cancelled>
  adminctl registrations delete <id>
  adminctl upload <image-file>`)
	os.Exit(2)
}
