package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gw-missions/internal/client"
	"github.com/sbilibin2017/gw-missions/internal/facades"
	"github.com/sbilibin2017/gw-missions/internal/models"
)

const usage = `usage: gw-missions [-server URL] [-token-file PATH] <command> [flags]

commands:
  register -name NAME -email EMAIL
  login -email EMAIL
  list
  add -title TITLE -description TEXT [-category CATEGORY] -reward POINTS
  complete ID
  delete ID
  stats
  health [-grpc ADDR]
`

// app carries the dependencies of a single CLI invocation.
type app struct {
	api       *client.APIClient
	tokenFile string
	stdin     io.Reader
	stdout    io.Writer
	password  func(prompt string) (string, error)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, client.ErrorMessage(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("gw-missions", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() { fmt.Fprint(stdout, usage) }
	server := fs.String("server", envOr("GW_MISSIONS_SERVER", "http://localhost:8080"), "API base URL")
	tokenFile := fs.String("token-file", defaultTokenFile(), "File holding the session token")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	a := &app{
		api:       client.NewAPIClient(*server),
		tokenFile: *tokenFile,
		stdin:     stdin,
		stdout:    stdout,
	}
	a.password = a.readPassword
	if token, err := os.ReadFile(a.tokenFile); err == nil {
		a.api.SetToken(strings.TrimSpace(string(token)))
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "list":
		return a.list(ctx)
	case "add":
		return a.add(ctx, rest)
	case "complete":
		return a.complete(ctx, rest)
	case "delete":
		return a.remove(ctx, rest)
	case "stats":
		return a.stats(ctx)
	case "health":
		return a.health(ctx, rest)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "Display name")
	email := fs.String("email", "", "Email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	password, err := a.password("Password: ")
	if err != nil {
		return err
	}

	token, err := a.api.Register(ctx, models.RegisterRequest{Name: *name, Email: *email, Password: password})
	if err != nil {
		return err
	}
	if err := a.saveToken(token); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "Registered and logged in")
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "Email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	password, err := a.password("Password: ")
	if err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, models.LoginRequest{Email: *email, Password: password})
	if err != nil {
		return err
	}
	if err := a.saveToken(resp.Token); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Welcome back, %s\n", resp.User.Name)
	return nil
}

func (a *app) list(ctx context.Context) error {
	missions, err := a.api.ListMissions(ctx)
	if err != nil {
		return err
	}
	return client.RenderMissions(a.stdout, missions)
}

// add, complete and delete go through the mirror so that the CLI
// applies the same local rules as any other client before saving.
func (a *app) add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	title := fs.String("title", "", "Mission title")
	description := fs.String("description", "", "Mission description")
	category := fs.String("category", "", "Mission category")
	reward := fs.Int("reward", 0, "Reward points")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return a.mutate(ctx, func(m *client.Mirror) error {
		_, err := m.AddMission(models.MissionCreateRequest{
			Title:        *title,
			Description:  *description,
			Category:     *category,
			RewardPoints: *reward,
		})
		return err
	})
}

func (a *app) complete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	return a.mutate(ctx, func(m *client.Mirror) error {
		_, err := m.Complete(id)
		return err
	})
}

func (a *app) remove(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	return a.mutate(ctx, func(m *client.Mirror) error {
		return m.DeleteMission(id)
	})
}

func (a *app) stats(ctx context.Context) error {
	summary, err := a.api.Stats(ctx)
	if err != nil {
		return err
	}
	profile, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}
	return client.RenderStats(a.stdout, summary, profile)
}

func (a *app) health(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("health", flag.ContinueOnError)
	addr := fs.String("grpc", envOr("GW_MISSIONS_GRPC", "localhost:50051"), "gRPC health address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	status, err := facades.NewHealthGRPCFacade(healthpb.NewHealthClient(conn)).Status(ctx, "")
	if err != nil {
		return fmt.Errorf("%w: %w", client.ErrConnection, err)
	}
	fmt.Fprintln(a.stdout, status)
	return nil
}

// mutate loads the mirror, applies fn and flushes the resulting save.
func (a *app) mutate(ctx context.Context, fn func(m *client.Mirror) error) error {
	m := client.NewMirror(a.api)
	defer m.Close()

	if err := m.Load(ctx); err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	flushErr := m.Flush(ctx)
	client.RenderNotices(a.stdout, m.Notices())
	return flushErr
}

func (a *app) saveToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(a.tokenFile), 0o700); err != nil {
		return err
	}
	return os.WriteFile(a.tokenFile, []byte(token), 0o600)
}

// readPassword reads without echo from a terminal, or a plain line otherwise.
func (a *app) readPassword(prompt string) (string, error) {
	fmt.Fprint(a.stdout, prompt)
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stdout)
		return string(b), err
	}
	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func parseID(args []string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, errors.New("expected exactly one mission id")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid mission id %q", args[0])
	}
	return id, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".gw-missions-token"
	}
	return filepath.Join(dir, "gw-missions", "token")
}
