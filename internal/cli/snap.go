package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/bounded/pkg/sqlite"
	"github.com/mesh-intelligence/bounded/pkg/types"
)

// snapView is the output shape of a single snapshot, shared by every
// output format.
type snapView struct {
	ID        string    `json:"snapshot_id" yaml:"snapshot_id" toml:"snapshot_id"`
	Name      string    `json:"name" yaml:"name" toml:"name"`
	Capacity  int       `json:"capacity" yaml:"capacity" toml:"capacity"`
	Len       int       `json:"len" yaml:"len" toml:"len"`
	Content   string    `json:"content" yaml:"content" toml:"content"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at" toml:"created_at"`
}

// exportDoc wraps the snapshot list; TOML has no top-level arrays.
type exportDoc struct {
	Snapshots []snapView `json:"snapshots" yaml:"snapshots" toml:"snapshots"`
}

func newSnapView(s sqlite.Snapshot) snapView {
	return snapView{
		ID:        s.ID,
		Name:      s.Name,
		Capacity:  s.Capacity,
		Len:       len(s.Content),
		Content:   string(s.Content),
		CreatedAt: s.CreatedAt,
	}
}

func newSnapCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snap",
		Short: "Save and inspect bounded string snapshots",
	}
	cmd.AddCommand(
		newSnapSaveCmd(a),
		newSnapGetCmd(a),
		newSnapListCmd(a),
		newSnapDeleteCmd(a),
		newSnapExportCmd(a),
	)
	return cmd
}

// withStore opens the snapshot store for the duration of fn.
func (a *app) withStore(fn func(sqlite.Store) error) error {
	dataDir, err := a.dataDir()
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	store, err := sqlite.Open(dataDir, a.logger)
	if err != nil {
		return sysError(fmt.Errorf("open store: %w", err))
	}
	defer store.Close()
	return fn(store)
}

// storeError classifies a store error by exit code.
func storeError(err error) error {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidName):
		return userError(err)
	default:
		return sysError(err)
	}
}

func newSnapSaveCmd(a *app) *cobra.Command {
	var trim bool

	cmd := &cobra.Command{
		Use:   "save <name> <text>",
		Short: "Store text as a bounded string snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return guard(func() error {
				str := a.bounded(args[1])
				if trim {
					str = str.Trim()
				}
				return a.withStore(func(store sqlite.Store) error {
					id, err := store.Save(args[0], str)
					if err != nil {
						return storeError(err)
					}
					out := struct {
						ID string `json:"snapshot_id"`
					}{id}
					return a.emit(cmd, out, func(w io.Writer) {
						fmt.Fprintln(w, id)
					})
				})
			})
		},
	}

	cmd.Flags().BoolVar(&trim, "trim", false, "trim ASCII whitespace before saving")
	return cmd
}

func newSnapGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store sqlite.Store) error {
				snap, err := store.Get(args[0])
				if err != nil {
					return storeError(err)
				}
				view := newSnapView(snap)
				return a.emit(cmd, view, func(w io.Writer) {
					fmt.Fprintf(w, "ID:       %s\n", view.ID)
					fmt.Fprintf(w, "Name:     %s\n", view.Name)
					fmt.Fprintf(w, "Len/Cap:  %d/%d\n", view.Len, view.Capacity)
					fmt.Fprintf(w, "Created:  %s\n", view.CreatedAt.Format(time.RFC3339))
					fmt.Fprintf(w, "Content:  %q\n", view.Content)
				})
			})
		},
	}
}

func newSnapListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List snapshots, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store sqlite.Store) error {
				snaps, err := store.List()
				if err != nil {
					return storeError(err)
				}
				views := make([]snapView, 0, len(snaps))
				for _, s := range snaps {
					views = append(views, newSnapView(s))
				}
				return a.emit(cmd, views, func(w io.Writer) {
					if len(views) == 0 {
						fmt.Fprintln(w, "no snapshots")
						return
					}
					for _, v := range views {
						fmt.Fprintf(w, "%s  %-16s %d/%d\n", v.ID, v.Name, v.Len, v.Capacity)
					}
				})
			})
		},
	}
}

func newSnapDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store sqlite.Store) error {
				if err := store.Delete(args[0]); err != nil {
					return storeError(err)
				}
				out := struct {
					ID      string `json:"snapshot_id"`
					Deleted bool   `json:"deleted"`
				}{args[0], true}
				return a.emit(cmd, out, func(w io.Writer) {
					fmt.Fprintf(w, "deleted %s\n", args[0])
				})
			})
		},
	}
}

func newSnapExportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every snapshot as JSON, YAML or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "json" && format != "yaml" && format != "toml" {
				return userError(fmt.Errorf("--format %q: want json, yaml or toml", format))
			}
			return a.withStore(func(store sqlite.Store) error {
				snaps, err := store.List()
				if err != nil {
					return storeError(err)
				}
				doc := exportDoc{Snapshots: make([]snapView, 0, len(snaps))}
				for _, s := range snaps {
					doc.Snapshots = append(doc.Snapshots, newSnapView(s))
				}
				if err := writeExport(cmd.OutOrStdout(), format, doc); err != nil {
					return sysError(fmt.Errorf("export %s: %w", format, err))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json, yaml or toml")
	return cmd
}

func writeExport(w io.Writer, format string, doc exportDoc) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(doc)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
}
