// Package shell implements the interactive terminal front end of the board.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atinyakov/pakjobs/internal/app"
	"github.com/atinyakov/pakjobs/internal/catalog"
	"github.com/atinyakov/pakjobs/internal/gate"
	"github.com/atinyakov/pakjobs/internal/models"
	"github.com/atinyakov/pakjobs/internal/session"
)

const helpText = `Available commands:
  home                 show the home page
  jobs                 list jobs matching the current filters
  search <text>        search titles and companies
  city <name|->        filter by city ("-" clears)
  category <name|->    filter by category ("-" clears)
  clear                drop every filter
  login <email>        sign in (any password is accepted)
  register             create an account
  profile              complete your profile
  apply <id>           apply to a job
  logout               sign out
  whoami               show the signed-in user
  exit                 leave the shell`

// Board defines the application state operations used by the shell.
type Board interface {
	View() app.State
	Do(func(*app.State))
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, fullName, email, password string) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, bio, skillsText, city string) error
	Apply(jobID string) (gate.Decision, error)
}

// Shell reads commands from In and writes to Out.
type Shell struct {
	Board Board
	In    io.Reader
	Out   io.Writer
}

// Run executes commands until "exit", end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) {
	p := &prompter{scanner: bufio.NewScanner(s.In), out: s.Out}

	for ctx.Err() == nil {
		line, ok := p.ask("pakjobs> ")
		if !ok {
			return
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}
		if cmd == "exit" {
			fmt.Fprintln(s.Out, "Khuda Hafiz!")
			return
		}
		s.dispatch(ctx, p, cmd, arg)
	}
}

func (s *Shell) dispatch(ctx context.Context, p *prompter, cmd, arg string) {
	switch cmd {
	case "help":
		fmt.Fprintln(s.Out, helpText)
	case "home":
		s.Board.Do(func(st *app.State) { app.Navigate(st, models.PageHome) })
		s.printHome()
	case "jobs":
		s.Board.Do(func(st *app.State) { app.Navigate(st, models.PageJobs) })
		s.printJobs()
	case "search":
		s.Board.Do(func(st *app.State) { app.Search(st, arg, st.Filters.City) })
		s.printJobs()
	case "city":
		city := clearable(arg)
		if city != "" && !catalog.IsCity(city) {
			fmt.Fprintf(s.Out, "Unknown city %q\n", city)
			return
		}
		s.Board.Do(func(st *app.State) { app.BrowseCity(st, city) })
		s.printJobs()
	case "category":
		category := clearable(arg)
		if category != "" && !catalog.IsCategory(category) {
			fmt.Fprintf(s.Out, "Unknown category %q\n", category)
			return
		}
		s.Board.Do(func(st *app.State) {
			app.SetCategory(st, category)
			app.Navigate(st, models.PageJobs)
		})
		s.printJobs()
	case "clear":
		s.Board.Do(app.ResetFilters)
		fmt.Fprintln(s.Out, "Filters cleared")
	case "login":
		if arg == "" {
			fmt.Fprintln(s.Out, "Usage: login <email>")
			return
		}
		password, _ := p.ask("Password: ")
		s.report(s.Board.Login(ctx, arg, password))
		s.printHome()
	case "register":
		s.register(ctx, p)
	case "profile":
		s.profile(ctx, p)
	case "apply":
		if arg == "" {
			fmt.Fprintln(s.Out, "Usage: apply <id>")
			return
		}
		s.apply(ctx, p, arg)
	case "logout":
		s.report(s.Board.Logout(ctx))
		fmt.Fprintln(s.Out, "Signed out")
	case "whoami":
		s.whoami()
	default:
		fmt.Fprintln(s.Out, "Unknown command. Type 'help' for a list of commands.")
	}
}

func clearable(arg string) string {
	if arg == "-" {
		return ""
	}
	return arg
}

// report prints a persistence failure; the transition itself has happened.
func (s *Shell) report(err error) {
	if err != nil {
		fmt.Fprintf(s.Out, "warning: session not saved: %v\n", err)
	}
}

func (s *Shell) flash(st app.State) {
	if st.Flash != "" {
		fmt.Fprintln(s.Out, st.Flash)
	}
}

func (s *Shell) printJob(j models.JobPosting) {
	fmt.Fprintf(s.Out, "[%s] %s at %s\n     %s | %s | %s | %s\n",
		j.ID, j.Title, j.Company, j.Location, j.Type, j.Category, j.Salary)
}

func (s *Shell) printHome() {
	st := s.Board.View()
	s.flash(st)
	if st.NeedsProfile() {
		fmt.Fprintln(s.Out, "Action Required! Please complete your profile details to unlock job applications. Type 'profile'.")
	}
	fmt.Fprintln(s.Out, "Latest Opportunities:")
	for _, j := range catalog.Featured(catalog.FeaturedCount) {
		s.printJob(j)
	}
}

func (s *Shell) printJobs() {
	st := s.Board.View()
	s.flash(st)
	jobs := catalog.Filter(catalog.Jobs(), st.Filters)
	fmt.Fprintf(s.Out, "%d Jobs\n", len(jobs))
	if len(jobs) == 0 {
		fmt.Fprintln(s.Out, "No jobs found. Try adjusting your filters or search keywords.")
	}
	for _, j := range jobs {
		s.printJob(j)
	}
}

func (s *Shell) whoami() {
	u, ok := s.Board.View().Session.User()
	if !ok {
		fmt.Fprintln(s.Out, "Not signed in")
		return
	}
	status := "incomplete"
	if u.IsProfileComplete {
		status = "complete"
	}
	fmt.Fprintf(s.Out, "%s <%s>\nCity: %s\nSkills: %s\nProfile: %s\n",
		u.FullName, u.Email, u.City, session.JoinSkills(u.Skills), status)
}

func (s *Shell) register(ctx context.Context, p *prompter) {
	fullName, ok := p.ask("Full name: ")
	if !ok {
		return
	}
	email, ok := p.ask("Email: ")
	if !ok {
		return
	}
	password, _ := p.ask("Password: ")
	if fullName == "" || email == "" {
		fmt.Fprintln(s.Out, "Full name and email are required")
		return
	}
	s.report(s.Board.Register(ctx, fullName, email, password))
	fmt.Fprintln(s.Out, "Account created. Let's complete your profile.")
	s.profile(ctx, p)
}

func (s *Shell) profile(ctx context.Context, p *prompter) {
	s.Board.Do(func(st *app.State) { app.Navigate(st, models.PageProfile) })
	u, ok := s.Board.View().Session.User()
	if !ok {
		fmt.Fprintln(s.Out, "Please sign in to edit your profile")
		return
	}

	city, ok := p.askDefault("Current city", u.City)
	if !ok {
		return
	}
	skills, ok := p.askDefault("Skills (comma separated)", session.JoinSkills(u.Skills))
	if !ok {
		return
	}
	bio, ok := p.askDefault("Professional bio", u.Bio)
	if !ok {
		return
	}
	if !catalog.IsCity(city) || skills == "" || bio == "" {
		fmt.Fprintln(s.Out, "City, skills and bio are required; the city must be a Pakistani city from the list")
		return
	}

	s.report(s.Board.UpdateProfile(ctx, bio, skills, city))
	s.printHome()
}

func (s *Shell) apply(ctx context.Context, p *prompter, jobID string) {
	d, err := s.Board.Apply(jobID)
	if errors.Is(err, app.ErrJobNotFound) {
		fmt.Fprintln(s.Out, "Job not found")
		return
	}

	switch d.Outcome {
	case gate.RedirectToAuth:
		fmt.Fprintln(s.Out, "Please sign in first: login <email> or register")
	case gate.ShowCompletionNotice:
		fmt.Fprintf(s.Out, "Employers need to see your Skills and City before you can apply for %s.\n", d.JobTitle)
		answer, _ := p.ask("Complete your profile now? [y/N] ")
		if strings.EqualFold(answer, "y") {
			s.Board.Do(app.CompleteFromNotice)
			s.profile(ctx, p)
			return
		}
		s.Board.Do(app.DismissNotice)
	case gate.ApplyAccepted:
		s.flash(s.Board.View())
	}
}
