package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/educonnect/core/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp        = errors.New("help provided")
	errNotLoggedIn = errors.New("not logged in")
)

type commandLine struct {
	svc *session.Service
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL - sign in; the password is prompted next")
	fmt.Fprintln(cli.out, "  logout             - end the current session")
	fmt.Fprintln(cli.out, "  whoami             - show the signed in user")
	fmt.Fprintln(cli.out, "  nav                - list the screens available to the signed in user")
	fmt.Fprintln(cli.out, "  demo               - list the demo accounts")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginCmd.SetOutput(cli.out)
	loginEmail := loginCmd.String("email", "", "The account's email. The password will be prompted next.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginEmail, string(pwd))
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "nav":
		return cli.nav()
	case "demo":
		return cli.demo()
	default:
		cli.printUsage()
		return errHelp
	}
}

// provider returns an initialized session Provider over the persisted session.
func (cli *commandLine) provider(ctx context.Context) (*session.Provider, error) {
	p := session.NewProvider(cli.svc)
	if err := p.Init(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func (cli *commandLine) login(email, pwd string) error {
	ctx := context.Background()
	p, err := cli.provider(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cli.out, "Signing in...")
	usr, err := p.Login(ctx, email, pwd)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Welcome back, %s (%s)\n", usr.Name, usr.Role)
	return nil
}

func (cli *commandLine) logout() error {
	ctx := context.Background()
	p, err := cli.provider(ctx)
	if err != nil {
		return err
	}
	if err = p.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Signed out")
	return nil
}

func (cli *commandLine) currentUser() (session.User, error) {
	p, err := cli.provider(context.Background())
	if err != nil {
		return session.User{}, err
	}
	usr, ok := p.User()
	if !ok {
		return session.User{}, errNotLoggedIn
	}
	return usr, nil
}

func (cli *commandLine) whoami() error {
	usr, err := cli.currentUser()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s <%s> (%s)\n", usr.Name, usr.Email, usr.Role)
	return nil
}

func (cli *commandLine) nav() error {
	usr, err := cli.currentUser()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	for _, route := range session.Navigation(usr.Role) {
		fmt.Fprintf(w, "%s\t%s\n", route.Path, route.Label)
	}
	return w.Flush()
}

func (cli *commandLine) demo() error {
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROLE\tEMAIL\tPASSWORD")
	for _, cred := range session.DemoCredentials() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", cred.Label, cred.Email, cred.Password)
	}
	return w.Flush()
}
