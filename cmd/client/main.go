package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ntmai/folio-api/internal/client/api"
	"github.com/ntmai/folio-api/internal/client/editor"
	"github.com/ntmai/folio-api/internal/client/session"
	"github.com/ntmai/folio-api/pkg/logger"
)

var (
	version   string
	buildDate string
)

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func printAggregate(s *session.ProfileSession) {
	cp := s.Aggregate()
	if cp == nil {
		fmt.Println("No profile loaded yet. Run 'reload'.")
		return
	}

	bio := "(no bio yet)"
	if cp.Profile != nil && cp.Profile.Bio != "" {
		bio = cp.Profile.Bio
	}
	fmt.Println("Bio:", bio)

	fmt.Printf("Projects (%d):\n", len(cp.Projects))
	for _, p := range cp.Projects {
		fmt.Printf("  [%s] %s — %s tags=%v\n", p.ID, p.Title, p.Description, p.Tags)
	}

	fmt.Printf("Experiences (%d):\n", len(cp.Experiences))
	for _, e := range cp.Experiences {
		end := "present"
		if e.EndDate != nil {
			end = *e.EndDate
		}
		fmt.Printf("  [%s] %s @ %s (%s .. %s)\n", e.ID, e.Role, e.Company, e.StartDate, end)
	}
}

func fillProjectForm(scanner *bufio.Scanner, ed *editor.ProjectEditor) {
	form := ed.Form()
	form.Title = prompt(scanner, "Title")
	form.Link = prompt(scanner, "Link (optional)")
	form.Description = prompt(scanner, "Description")
	ed.SetForm(form)

	for {
		tag := prompt(scanner, "Add tag (empty to stop)")
		if tag == "" {
			break
		}
		ed.AddTag(tag)
	}
}

func fillExperienceForm(scanner *bufio.Scanner, ed *editor.ExperienceEditor) {
	ed.SetForm(api.ExperienceForm{
		Company:     prompt(scanner, "Company"),
		Role:        prompt(scanner, "Role"),
		StartDate:   prompt(scanner, "Start date (YYYY-MM-DD)"),
		EndDate:     prompt(scanner, "End date (YYYY-MM-DD, empty = present)"),
		Description: prompt(scanner, "Description"),
	})
}

func findProject(s *session.ProfileSession, id string) (api.Project, bool) {
	cp := s.Aggregate()
	if cp == nil {
		return api.Project{}, false
	}
	for _, p := range cp.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return api.Project{}, false
}

func findExperience(s *session.ProfileSession, id string) (api.Experience, bool) {
	cp := s.Aggregate()
	if cp == nil {
		return api.Experience{}, false
	}
	for _, e := range cp.Experiences {
		if e.ID == id {
			return e, true
		}
	}
	return api.Experience{}, false
}

// repl runs the interactive shell loop driving the session and editors.
func repl(client *api.Client, sess *session.ProfileSession, projectEd *editor.ProjectEditor, experienceEd *editor.ExperienceEditor) {
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("folio> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, register, login, logout, reload, show, edit, bio <text>, save, cancel,")
			fmt.Println("  project add | project edit <id> | project rm <id>, exp add | exp edit <id> | exp rm <id>, exit")
		case "register":
			email := prompt(scanner, "Email")
			password := prompt(scanner, "Password")
			if err := client.SignUp(ctx, email, password); err != nil {
				fmt.Println("register failed:", err)
				continue
			}
			if err := sess.Reload(ctx); err != nil {
				fmt.Println("load failed:", err)
			}
			printAggregate(sess)
		case "login":
			email := prompt(scanner, "Email")
			password := prompt(scanner, "Password")
			if err := client.SignIn(ctx, email, password); err != nil {
				fmt.Println("login failed:", err)
				continue
			}
			if err := sess.Reload(ctx); err != nil {
				fmt.Println("load failed:", err)
			}
			printAggregate(sess)
		case "logout":
			if err := client.SignOut(ctx); err != nil {
				fmt.Println("logout failed:", err)
			}
		case "reload":
			if err := sess.Reload(ctx); err != nil {
				fmt.Println("reload failed:", err)
			}
			printAggregate(sess)
		case "show":
			printAggregate(sess)
		case "edit":
			sess.ToggleEdit()
			fmt.Println("editing:", sess.IsEditing())
		case "bio":
			if !sess.IsEditing() {
				fmt.Println("Toggle 'edit' first.")
				continue
			}
			sess.SetBio(strings.TrimSpace(strings.TrimPrefix(line, "bio")))
		case "save":
			if err := sess.Save(ctx); err != nil {
				fmt.Println("save failed:", err)
				continue
			}
			printAggregate(sess)
		case "cancel":
			sess.Cancel()
		case "project":
			handleItemCommand(sess, args, itemHandlers{
				add: func() error {
					projectEd.Open()
					fillProjectForm(scanner, projectEd)
					return projectEd.Submit(ctx)
				},
				edit: func(id string) error {
					p, ok := findProject(sess, id)
					if !ok {
						fmt.Println("Project not found:", id)
						return nil
					}
					projectEd.OpenEdit(p)
					fillProjectForm(scanner, projectEd)
					return projectEd.Submit(ctx)
				},
				remove: func(id string) error {
					return projectEd.Delete(ctx, id)
				},
			})
			printAggregate(sess)
		case "exp":
			handleItemCommand(sess, args, itemHandlers{
				add: func() error {
					experienceEd.Open()
					fillExperienceForm(scanner, experienceEd)
					return experienceEd.Submit(ctx)
				},
				edit: func(id string) error {
					e, ok := findExperience(sess, id)
					if !ok {
						fmt.Println("Experience not found:", id)
						return nil
					}
					experienceEd.OpenEdit(e)
					fillExperienceForm(scanner, experienceEd)
					return experienceEd.Submit(ctx)
				},
				remove: func(id string) error {
					return experienceEd.Delete(ctx, id)
				},
			})
			printAggregate(sess)
		case "exit":
			sess.Close()
			return
		default:
			fmt.Println("Unknown command. Type 'help'.")
		}
	}
}

type itemHandlers struct {
	add    func() error
	edit   func(id string) error
	remove func(id string) error
}

// Item mutations are only available while the page-level edit session is
// active, matching the presentation gating.
func handleItemCommand(sess *session.ProfileSession, args []string, h itemHandlers) {
	if !sess.IsEditing() {
		fmt.Println("Toggle 'edit' first.")
		return
	}
	if len(args) < 2 {
		fmt.Println("Usage: <project|exp> add | edit <id> | rm <id>")
		return
	}

	var err error
	switch args[1] {
	case "add":
		err = h.add()
	case "edit":
		if len(args) < 3 {
			fmt.Println("Usage: <project|exp> edit <id>")
			return
		}
		err = h.edit(args[2])
	case "rm":
		if len(args) < 3 {
			fmt.Println("Usage: <project|exp> rm <id>")
			return
		}
		err = h.remove(args[2])
	default:
		fmt.Println("Usage: <project|exp> add | edit <id> | rm <id>")
		return
	}
	if err != nil {
		fmt.Println("operation failed:", err)
	}
}

func main() {
	serverAddr := flag.String("server", "http://localhost:8080", "folio server base URL")
	flag.Parse()

	fmt.Printf("folio client %s (%s)\n", version, buildDate)

	appLogger := logger.NewZapLogger("development")
	httpClient := &http.Client{Timeout: 15 * time.Second}
	client := api.NewClient(*serverAddr, httpClient)

	sess := session.NewProfileSession(client, appLogger)
	projectEd := editor.NewProjectEditor(client, sess.Reload, appLogger)
	experienceEd := editor.NewExperienceEditor(client, sess.Reload, appLogger)

	fmt.Println("Type 'help' for commands.")
	repl(client, sess, projectEd, experienceEd)
}
