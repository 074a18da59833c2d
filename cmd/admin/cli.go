package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"proccms/internal/domains/admin/model/dto"
	"proccms/internal/domains/admin/service"
	"proccms/shared/validator"
	"syscall"

	"golang.org/x/term"
)

const (
	cmdCreateAdmin   = "create-admin"
	cmdResetPassword = "reset-password"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	admins       service.Admin
	out          io.Writer
	readPassword func(fd int) ([]byte, error)
}

func newCommandLine(admins service.Admin, out io.Writer) *commandLine {
	return &commandLine{
		admins:       admins,
		out:          out,
		readPassword: term.ReadPassword,
	}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  create-admin -username USERNAME -name NAME [-email EMAIL] [-phone PHONE] [-department DEPT]")
	fmt.Fprintln(cli.out, "  reset-password -username USERNAME")
	fmt.Fprintln(cli.out, "The password is prompted next.")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()

		return errHelp
	}

	switch args[1] {
	case cmdCreateAdmin:
		return cli.createAdmin(ctx, args[2:])
	case cmdResetPassword:
		return cli.resetPassword(ctx, args[2:])
	default:
		cli.printUsage()

		return errHelp
	}
}

func (cli *commandLine) createAdmin(ctx context.Context, args []string) error {
	var req dto.CreateAdminRequest

	flags := flag.NewFlagSet(cmdCreateAdmin, flag.ContinueOnError)
	flags.SetOutput(cli.out)
	flags.StringVar(&req.Username, "username", "", "login name of the admin")
	flags.StringVar(&req.Name, "name", "", "display name")
	flags.StringVar(&req.Email, "email", "", "contact email")
	flags.StringVar(&req.Phone, "phone", "", "contact phone")
	flags.StringVar(&req.Department, "department", "", "department")

	if err := flags.Parse(args); err != nil {
		return errHelp
	}

	password, err := cli.prompt()
	if err != nil {
		return err
	}

	req.Password = password

	if err := validator.ValidateStruct(&req); err != nil {
		return fmt.Errorf("invalid admin: %w", err)
	}

	if err := cli.admins.Create(ctx, req); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Fprintf(cli.out, "Admin %s created\n", req.Username)

	return nil
}

func (cli *commandLine) resetPassword(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet(cmdResetPassword, flag.ContinueOnError)
	flags.SetOutput(cli.out)
	username := flags.String("username", "", "login name of the admin")

	if err := flags.Parse(args); err != nil {
		return errHelp
	}

	if *username == "" {
		flags.Usage()

		return errHelp
	}

	password, err := cli.prompt()
	if err != nil {
		return err
	}

	if err := cli.admins.SetPassword(ctx, *username, password); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	fmt.Fprintf(cli.out, "Password of %s updated\n", *username)

	return nil
}

func (cli *commandLine) prompt() (string, error) {
	fmt.Fprint(cli.out, "Enter password: ")

	pwd, err := cli.readPassword(int(syscall.Stdin)) //nolint:unconvert
	fmt.Fprintln(cli.out)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(pwd) == 0 {
		return "", errHelp
	}

	return string(pwd), nil
}
