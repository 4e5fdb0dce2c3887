package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/dmitrijs2005/signly/internal/client/client"
	"github.com/dmitrijs2005/signly/internal/client/config"
	"github.com/dmitrijs2005/signly/internal/common"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var errUsage = errors.New("usage")

type command struct {
	name    string
	summary string
	online  bool
	run     func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{"token", "mint an access token for an account", false, (*App).token},
	{"digest", "print the sha256 content digest of a file", false, (*App).digest},
	{"ping", "check that the server is reachable", true, (*App).ping},
	{"create", "register a document for signing", true, (*App).create},
	{"get", "show one document", true, (*App).get},
	{"list", "list documents of a creator", true, (*App).list},
	{"sign", "sign a document", true, (*App).sign},
	{"cancel", "cancel a document", true, (*App).cancel},
	{"delete", "delete a document", true, (*App).delete},
	{"extend", "move a document's signing deadline", true, (*App).extend},
	{"attachment", "get a presigned attachment URL", true, (*App).attachment},
}

type App struct {
	config    *config.Config
	client    client.Client
	newClient func(addr, token string) (client.Client, error)
	stdout    io.Writer
	stderr    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		newClient: func(addr, token string) (client.Client, error) {
			return client.NewSignlyClient(addr, token)
		},
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SplitCommand drops the global flags (and their values) from args and
// returns the command name with the remaining arguments.
func SplitCommand(args []string) (string, []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			return arg, args[i+1:]
		}
		name, _, hasValue := strings.Cut(arg, "=")
		if slices.Contains(config.GlobalFlags, name) && !hasValue {
			i++
		}
	}
	return "", nil
}

// Run executes the command named in args and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	name, rest := SplitCommand(args)
	if name == "" || name == "help" {
		a.usage(a.stdout)
		return ExitOK
	}

	idx := slices.IndexFunc(commands, func(c command) bool { return c.name == name })
	if idx < 0 {
		fmt.Fprintf(a.stderr, "unknown command %q\n", name)
		a.usage(a.stderr)
		return ExitUsage
	}
	cmd := commands[idx]

	if cmd.online {
		if a.client == nil {
			c, err := a.newClient(a.config.ServerEndpointAddr, a.config.AccessToken)
			if err != nil {
				a.fail(err)
				return ExitError
			}
			a.client = c
		}
		defer a.client.Close()

		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.RequestTimeout)
		defer cancel()
	}

	err := cmd.run(a, ctx, rest)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errUsage):
		return ExitUsage
	default:
		a.fail(err)
		return ExitError
	}
}

func (a *App) usage(w io.Writer) {
	fmt.Fprintln(w, "usage: signly-cli [-a addr] [-k token] [-o seconds] <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-11s %s\n", c.name, c.summary)
	}
}

type errorOutput struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *App) fail(err error) {
	var out errorOutput
	out.Error.Code = common.Reason(err)
	if errors.Is(err, client.ErrUnavailable) {
		out.Error.Code = "UNAVAILABLE"
	}
	out.Error.Message = err.Error()
	_ = writeJSON(a.stderr, out)
}

var protoJSON = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

// print writes v as indented JSON. Protobuf messages go through protojson so
// timestamps come out as RFC 3339 strings.
func (a *App) print(v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return writeJSON(a.stdout, v)
	}

	raw, err := protoJSON.Marshal(m)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(a.stdout)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
