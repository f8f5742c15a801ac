package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/docledger/internal/common"
)

var errUsage = errors.New("wrong arguments")

// getSimpleText, getPassword and getMultiline are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

func (a *App) Register(ctx context.Context, _ []string) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := getSimpleText(a.reader, "Enter role (empty for STUDENT)", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.api.Register(ctx, userName, string(password), role); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

func (a *App) Login(ctx context.Context, _ []string) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	role, err := a.api.Login(ctx, userName, string(password))
	if err != nil {
		return err
	}

	a.userName = strings.ToLower(strings.TrimSpace(userName))
	a.role = role
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	a.api.Logout()
	a.userName = ""
	a.role = ""
	return nil
}

// readContent asks for a JSON document spanning several lines.
func (a *App) readContent() (any, error) {
	text, err := getMultiline(a.reader, "Enter JSON content", a.out)
	if err != nil {
		return nil, err
	}
	var content any
	if err := json.Unmarshal([]byte(text), &content); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return content, nil
}

func (a *App) Post(ctx context.Context, _ []string) error {
	content, err := a.readContent()
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	guid, err := a.api.PostData(ctx, content)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, guid)
	return nil
}

func (a *App) Get(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	content, err := a.api.GetData(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printJSON(content)
}

func (a *App) Put(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	content, err := a.readContent()
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	guid, err := a.api.PutData(ctx, args[0], content)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, guid)
	return nil
}

func (a *App) List(ctx context.Context, _ []string) error {
	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	docs, err := a.api.GetAllData(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(docs)
}

func (a *App) Latest(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	doc, err := a.api.GetLatestData(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printJSON(doc)
}

func (a *App) Trace(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	versions, err := a.api.Trace(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printJSON(versions)
}

func (a *App) Grant(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	added, err := a.api.GrantAccess(ctx, args[0], args[1:])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Granted to: %s\n", strings.Join(added, ", "))
	return nil
}

func (a *App) Revoke(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	if err := a.api.RevokeAccess(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Revoked")
	return nil
}

func (a *App) Access(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	users, err := a.api.GetAccessInfo(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printJSON(users)
}

func (a *App) Publish(ctx context.Context, _ []string) error {
	content, err := a.readContent()
	if err != nil {
		return err
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	guid, err := a.api.PublishData(ctx, content)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, guid)
	return nil
}

func (a *App) Published(ctx context.Context, args []string) error {
	onlyMine := len(args) == 1 && args[0] == "mine"

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	groups, err := a.api.GetPublished(ctx, onlyMine)
	if err != nil {
		return err
	}
	return a.printJSON(groups)
}
