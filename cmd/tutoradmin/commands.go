package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Freeeeeet/mathtutor_bot/internal/app"
	"github.com/Freeeeeet/mathtutor_bot/internal/config"
	"github.com/Freeeeeet/mathtutor_bot/internal/model"
	"github.com/Freeeeeet/mathtutor_bot/internal/repository"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Показать сводку по ученикам и занятиям",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			data := e.tutor.Snapshot()
			dashboard := service.NewDashboardService()
			stats := dashboard.Stats(data)
			week := dashboard.WeeklyIncome(data, time.Now())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "storage:    %s\n", e.cfg.StorageBackend)
			fmt.Fprintf(out, "students:   %d\n", stats.TotalStudents)
			fmt.Fprintf(out, "upcoming:   %d\n", stats.UpcomingLessons)
			fmt.Fprintf(out, "completed:  %d\n", stats.CompletedLessons)
			fmt.Fprintf(out, "unpaid:     %.0f TL\n", stats.UnpaidAmount)
			fmt.Fprintf(out, "week:       %.0f TL\n", service.TotalIncome(week))
			fmt.Fprintf(out, "todos:      %d\n", len(data.Todos))
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Сохранить резервную копию в JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			name, body, err := e.transfer.ExportJSON(e.tutor.Snapshot(), time.Now())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), dir, name, body)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "каталог для файла")
	return cmd
}

func newExportXLSXCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export-xlsx",
		Short: "Сохранить журнал занятий в Excel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			name, body, err := e.transfer.ExportLedgerXLSX(e.tutor.Snapshot(), time.Now())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), dir, name, body)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "каталог для файла")
	return cmd
}

func newImportCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Заменить все данные содержимым резервной копии",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			data, err := e.transfer.ParseImport(raw)
			if err != nil {
				return err
			}
			return replaceData(cmd, e, data, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "не спрашивать подтверждение")
	return cmd
}

func newRestoreAutoCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "restore-auto",
		Short: "Восстановить данные из последней автоматической копии",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			raw, err := e.storage.Store.Get(cmd.Context(), app.AutoBackupKey)
			if errors.Is(err, repository.ErrBlobNotFound) {
				return errors.New("auto backup not found")
			}
			if err != nil {
				return err
			}

			data, err := e.transfer.ParseImport(raw)
			if err != nil {
				return err
			}
			return replaceData(cmd, e, data, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "не спрашивать подтверждение")
	return cmd
}

func newSetPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-pin",
		Short: "Задать новый пароль входа",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			pin, err := readPin(cmd, in, "Yeni PIN: ")
			if err != nil {
				return err
			}
			again, err := readPin(cmd, in, "Tekrar: ")
			if err != nil {
				return err
			}
			if pin != again {
				return errors.New("pins do not match")
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.auth.SetPassphrase(cmd.Context(), pin); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "PIN updated")
			return nil
		},
	}
}

func newResetPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-pin",
		Short: "Удалить пароль; бот предложит создать новый",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.auth.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "PIN removed")
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Применить миграции postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.StorageBackend != config.StoragePostgres {
				return fmt.Errorf("migrations apply only to postgres, STORAGE_BACKEND=%s", cfg.StorageBackend)
			}

			// OpenStorage применяет миграции при подключении
			storage, err := app.OpenStorage(cmd.Context(), cfg, app.NewCLILogger(true))
			if err != nil {
				return err
			}
			storage.Close()
			return nil
		},
	}
}

func replaceData(cmd *cobra.Command, e *env, data model.AppData, yes bool) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Backup: %d students, %d lessons, %d todos\n",
		len(data.Students), len(data.Lessons), len(data.Todos))

	if !yes {
		ok, err := confirm(cmd.InOrStdin(), out, "Current data will be replaced. Continue? [y/N] ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}
	}

	if err := e.tutor.Replace(cmd.Context(), data); err != nil {
		return err
	}
	fmt.Fprintln(out, "Data replaced")
	return nil
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "e", "evet":
		return true, nil
	}
	return false, nil
}

func writeOutput(out io.Writer, dir, name string, body []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(out, "Saved %s (%d bytes)\n", path, len(body))
	return nil
}

// readPin читает пароль без эха, если stdin терминал
func readPin(cmd *cobra.Command, in *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read pin: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read pin: %w", err)
	}
	return strings.TrimSpace(line), nil
}
