package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/jobapp/internal/client/config"
	"github.com/dmitrijs2005/jobapp/internal/logging"
	"github.com/dmitrijs2005/jobapp/internal/seed"
	"github.com/dmitrijs2005/jobapp/internal/services"
	"github.com/dmitrijs2005/jobapp/internal/session"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	authService   services.AuthService
	jobService    services.JobService
	incomeService services.IncomeService
	nav           *Navigator
	draft         *session.Draft
	reader        *bufio.Reader
	out           io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(logging.Options{Level: c.LogLevel, File: c.LogFile})

	data, err := seed.Load(c.SeedFile)
	if err != nil {
		return nil, err
	}

	core, err := services.NewCore(data, services.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	a := newApp(core, os.Stdin, os.Stdout, logger)
	a.config = c
	return a, nil
}

// newApp wires the screens over core. Output goes to out, prompts read from in.
func newApp(core *services.Core, in io.Reader, out io.Writer, logger logging.Logger) *App {
	a := &App{
		logger:        logger.With("module", "cli"),
		jobService:    services.NewJobService(core),
		incomeService: services.NewIncomeService(core),
		nav:           NewNavigator(),
		reader:        bufio.NewReader(in),
		out:           out,
	}
	a.authService = services.NewAuthService(core, services.NotifierFunc(func(_ context.Context, msg string) {
		fmt.Fprintln(a.out, msg)
	}))

	a.nav.OnLeave(a.leaveScreen)
	core.Session.Subscribe(a.nav.HandleSessionEvent)
	return a
}

// Run blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to jobapp (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.authService.Current()
	return ok
}

func (a *App) getStatus() string {
	if u, ok := a.authService.Current(); ok {
		return fmt.Sprintf(" (%s %s)", u.Username, a.nav.Current())
	}
	return fmt.Sprintf(" (%s)", a.nav.Current())
}

// leaveScreen drops the profile draft when the profile screen is left.
func (a *App) leaveScreen(from Screen) {
	if from != ScreenProfile || a.draft == nil {
		return
	}
	if a.draft.Dirty() {
		fmt.Fprintln(a.out, "Unsaved profile changes discarded")
	}
	a.draft = nil
}

func (a *App) Back(ctx context.Context) error {
	if !a.nav.Back() {
		return errNoHistory
	}
	return a.show(ctx, a.nav.Current())
}

// show renders screen s without navigating.
func (a *App) show(ctx context.Context, s Screen) error {
	switch s {
	case ScreenSearch:
		a.printPostings(a.jobService.List(ctx))
	case ScreenFavorites:
		favs := a.jobService.Favorites(ctx)
		if len(favs) == 0 {
			fmt.Fprintln(a.out, "No favorites yet")
			return nil
		}
		a.printPostings(favs)
	case ScreenProfile:
		return a.Profile(ctx)
	case ScreenIncome:
		a.printIncome()
	case ScreenLogin:
		fmt.Fprintln(a.out, "Type 'login' to sign in")
	}
	return nil
}
