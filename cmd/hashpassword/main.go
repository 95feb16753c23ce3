// Command hashpassword reads an admin password from stdin and prints the
// bcrypt hash to put in ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Dosada05/league-admin/utils"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	fmt.Fprint(os.Stderr, "password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		logger.Error("failed to read password", slog.Any("error", err))
		os.Exit(1)
	}

	hash, err := utils.HashPassword(strings.TrimRight(line, "\r\n"))
	if err != nil {
		logger.Error("failed to hash password", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(hash)
}
