package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"proccms/internal/domains/admin/model/dto"
	"proccms/internal/domains/admin/service/mocks"
)

func setup(t *testing.T, password string) (*commandLine, *mocks.MockAdmin, *bytes.Buffer) {
	t.Helper()

	admins := mocks.NewMockAdmin(gomock.NewController(t))
	out := &bytes.Buffer{}

	cli := newCommandLine(admins, out)
	cli.readPassword = func(int) ([]byte, error) { return []byte(password), nil }

	return cli, admins, out
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no subcommand", args: []string{"admin"}},
		{name: "unknown subcommand", args: []string{"admin", "lol"}},
		{name: "reset without username", args: []string{"admin", cmdResetPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _, _ := setup(t, "secret1")

			assert.ErrorIs(t, cli.run(context.Background(), tt.args), errHelp)
		})
	}
}

func TestCreateAdmin(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		cli, admins, out := setup(t, "secret1")

		admins.EXPECT().Create(gomock.Any(), dto.CreateAdminRequest{
			Username: "root",
			Name:     "Site Admin",
			Password: "secret1",
		}).Return(nil)

		err := cli.run(context.Background(), []string{"admin", cmdCreateAdmin, "-username", "root", "-name", "Site Admin"})

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Admin root created")
	})

	t.Run("short password", func(t *testing.T) {
		cli, _, _ := setup(t, "abc")

		err := cli.run(context.Background(), []string{"admin", cmdCreateAdmin, "-username", "root", "-name", "Site Admin"})

		require.Error(t, err)
	})

	t.Run("empty password", func(t *testing.T) {
		cli, _, _ := setup(t, "")

		err := cli.run(context.Background(), []string{"admin", cmdCreateAdmin, "-username", "root", "-name", "Site Admin"})

		assert.ErrorIs(t, err, errHelp)
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		cli, admins, out := setup(t, "n3wsecret")

		admins.EXPECT().SetPassword(gomock.Any(), "root", "n3wsecret").Return(nil)

		require.NoError(t, cli.run(context.Background(), []string{"admin", cmdResetPassword, "-username", "root"}))
		assert.Contains(t, out.String(), "Password of root updated")
	})

	t.Run("service failure", func(t *testing.T) {
		cli, admins, _ := setup(t, "n3wsecret")

		admins.EXPECT().SetPassword(gomock.Any(), "ghost", "n3wsecret").Return(errors.New("not found"))

		err := cli.run(context.Background(), []string{"admin", cmdResetPassword, "-username", "ghost"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to reset password")
	})
}
