package migrate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/config"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/db"
	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Create the tables the gateway reads and writes if they do not exist yet.

The schema is embedded in the binary and every statement is idempotent, so
running migrate repeatedly is safe.`,
	RunE: migrateCommand,
}

const configDirFlag = "config-dir"

var migrateFlags = map[string]cobraflags.Flag{
	configDirFlag: &cobraflags.StringFlag{
		Name:  configDirFlag,
		Value: "config",
		Usage: "Directory containing config.yaml",
	},
}

func NewMigrateCommand() *cobra.Command {
	cobraflags.RegisterMap(migrateCmd, migrateFlags)
	return migrateCmd
}

func migrateCommand(_ *cobra.Command, _ []string) error {
	if err := config.InitConfig(migrateFlags[configDirFlag].GetString()); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	if err := logger.InitLogger(config.GetString("log.dir"), config.GetString("log.level")); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := db.InitPostgres(); err != nil {
		return err
	}
	defer db.ClosePostgres()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return db.Migrate(ctx, db.Postgres)
}
