package main

import (
	"time"

	"github.com/trezcool/mahudhurio/core"
	"github.com/trezcool/mahudhurio/core/user"
)

// addUser updates or creates a user.User
func (cli *commandLine) addUser(email, name, pwd string, isAdmin bool) error {
	var usr user.User
	var err error
	email = core.CleanString(email, true /* lower */)
	now := time.Now().UTC()

	if usr, err = cli.usrRepo.GetUserByEmail(email); err != nil {
		if err != user.ErrNotFound {
			return err
		}
		usr = user.User{
			Email:     email,
			CreatedAt: now,
		}
	}
	usr.Name = core.CleanString(name)
	usr.Role = user.RoleInstructor
	if isAdmin {
		usr.Role = user.RoleAdmin
	}
	usr.IsActive = true
	usr.UpdatedAt = now
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}
	if _, err := cli.usrRepo.UpdateOrCreateUser(usr); err != nil {
		return err
	}
	return nil
}
