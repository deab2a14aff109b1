// cmd/dashboard/dashboard.go
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/haroldmz/stockdesk/internal/export"
	"github.com/haroldmz/stockdesk/internal/listview"
	"github.com/haroldmz/stockdesk/internal/pkg/config"
)

type screenConfig struct {
	pageSize  int
	sortBy    string
	sortOrder string
	logger    *slog.Logger
}

// dashboard is the terminal presentation surface: it renders orchestrator
// state and forwards user intents, nothing more.
type dashboard struct {
	cfg     *config.Config
	deps    *dependencies
	logger  *slog.Logger
	screens map[string]screenController
	ops     map[string]entityOps
	active  string
	loaded  map[string]bool
}

func newDashboard(cfg *config.Config, deps *dependencies, logger *slog.Logger) *dashboard {
	screens, ops := buildScreens(screenConfig{
		pageSize:  cfg.UI.PageSize,
		sortBy:    cfg.UI.DefaultSortBy,
		sortOrder: cfg.UI.DefaultSortOrder,
		logger:    logger,
	}, deps)
	return &dashboard{
		cfg:     cfg,
		deps:    deps,
		logger:  logger,
		screens: screens,
		ops:     ops,
		active:  "customers",
		loaded:  map[string]bool{},
	}
}

func (d *dashboard) current() screenController {
	return d.screens[d.active]
}

func (d *dashboard) dispatch(ctx context.Context, out io.Writer, line string) {
	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]

	var err error
	switch cmd {
	case "help":
		printHelp(out)
		return
	case "customers", "suppliers", "users":
		d.active = cmd
		if !d.loaded[cmd] {
			err = d.current().Load(ctx)
			d.loaded[cmd] = err == nil
		}
	case "search":
		err = d.current().Search(ctx, strings.Join(args, " "))
	case "field":
		if len(args) != 1 {
			err = fmt.Errorf("usage: field name|email|phone|all")
			break
		}
		err = d.current().SetSearchField(ctx, args[0])
	case "sort":
		if len(args) != 1 {
			err = fmt.Errorf("usage: sort <column>")
			break
		}
		err = d.current().ToggleSort(ctx, args[0])
	case "filter":
		switch len(args) {
		case 1:
			err = d.current().ClearFilter(ctx, args[0])
		case 2:
			err = d.current().SetFilter(ctx, args[0], args[1])
		default:
			err = fmt.Errorf("usage: filter <key> [value]")
		}
	case "page":
		if len(args) != 1 {
			err = fmt.Errorf("usage: page <n>|next|prev")
			break
		}
		switch args[0] {
		case "next":
			err = d.current().NextPage(ctx)
		case "prev":
			err = d.current().PrevPage(ctx)
		default:
			var n int
			if n, err = strconv.Atoi(args[0]); err != nil {
				err = fmt.Errorf("page must be a number")
				break
			}
			err = d.current().ChangePage(ctx, n)
		}
	case "add":
		if len(args) == 0 {
			err = fmt.Errorf("usage: add name=... email=... [phone=...] ...")
			break
		}
		err = d.ops[d.active].add(ctx, parseFields(args))
	case "edit":
		if len(args) < 2 {
			err = fmt.Errorf("usage: edit <id> field=value ...")
			break
		}
		var id int64
		if id, err = strconv.ParseInt(args[0], 10, 64); err != nil {
			err = fmt.Errorf("id must be a number")
			break
		}
		err = d.ops[d.active].edit(ctx, id, parseFields(args[1:]))
	case "delete", "restore":
		if len(args) != 1 {
			err = fmt.Errorf("usage: %s <id>", cmd)
			break
		}
		var id int64
		if id, err = strconv.ParseInt(args[0], 10, 64); err != nil {
			err = fmt.Errorf("id must be a number")
			break
		}
		if cmd == "delete" {
			err = d.ops[d.active].remove(ctx, id)
		} else {
			err = d.ops[d.active].restore(ctx, id)
		}
	case "deleted":
		if err := d.ops[d.active].deleted(ctx, out); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		return
	case "lookup":
		if len(args) != 2 {
			fmt.Fprintln(out, "usage: lookup email|phone <value>")
			return
		}
		if err := d.ops[d.active].lookup(ctx, out, args[0], args[1]); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		return
	case "refresh":
		err = d.current().Refresh(ctx)
	case "clear":
		err = d.current().ClearFilters(ctx)
	case "dismiss":
		d.current().DismissError()
	case "export":
		format := "csv"
		if len(args) > 0 {
			format = args[0]
		}
		err = d.exportActive(ctx, out, format)
	case "login":
		if len(args) != 2 {
			err = fmt.Errorf("usage: login <email> <password>")
			break
		}
		_, err = d.deps.auth.Login(ctx, args[0], args[1])
		if err == nil {
			fmt.Fprintln(out, "signed in")
		}
	case "logout":
		d.deps.auth.Logout(ctx)
		fmt.Fprintln(out, "signed out")
		return
	case "whoami":
		if user := d.deps.auth.CurrentUser(ctx); user != nil {
			fmt.Fprintf(out, "%s <%s> (%s)\n", user.Name, user.Email, user.Role)
		} else {
			fmt.Fprintln(out, "not signed in")
		}
		return
	default:
		fmt.Fprintf(out, "unknown command %q, try 'help'\n", cmd)
		return
	}

	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
	}
	d.render(out)
}

// Export is role-gated at the call path. The check is a UX convenience; the
// server still authorizes the underlying list reads.
func (d *dashboard) exportActive(ctx context.Context, out io.Writer, format string) error {
	if !d.deps.auth.IsAdmin(ctx) {
		return fmt.Errorf("export requires the admin role")
	}

	stamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_export_%s.%s", d.active, stamp, format)
	path := filepath.Join(d.cfg.Export.Dir, name)

	switch format {
	case "csv":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		if err := d.current().ExportCSV(f); err != nil {
			return err
		}
	case "xlsx":
		data, err := d.current().ExportXLSX()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}

	fmt.Fprintf(out, "exported to %s\n", path)
	return nil
}

func (d *dashboard) render(out io.Writer) {
	d.current().Render(out)
}

// parseFields splits key=value arguments; malformed arguments are ignored.
func parseFields(args []string) map[string]string {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		if key, value, ok := strings.Cut(arg, "="); ok && key != "" {
			fields[strings.ToLower(key)] = value
		}
	}
	return fields
}

// renderRows prints a bare table for rows outside the active view, such as
// lookup results and the deleted listing.
func renderRows[T any](out io.Writer, title string, rows []T, cols []export.Column[T]) {
	fmt.Fprintf(out, "\n== %s ==\n", title)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Header
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fields := make([]string, len(cols))
		for i, col := range cols {
			fields[i] = col.Value(row)
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}
	w.Flush()
}

// renderTable prints the chip row, the table and the pagination line for one
// view snapshot.
func renderTable[T any](out io.Writer, title string, st listview.State[T], cols []export.Column[T]) {
	fmt.Fprintf(out, "\n== %s ==\n", title)

	if st.Loading {
		fmt.Fprintln(out, "loading...")
	}
	if st.ErrorMessage != "" {
		fmt.Fprintf(out, "! %s (showing last known data, 'dismiss' to hide)\n", st.ErrorMessage)
	}
	if len(st.Indicators) > 0 {
		chips := make([]string, len(st.Indicators))
		for i, in := range st.Indicators {
			chips[i] = fmt.Sprintf("[%s: %s ×]", in.Label, in.Value)
		}
		fmt.Fprintln(out, strings.Join(chips, " "))
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Header
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range st.Rows {
		fields := make([]string, len(cols))
		for i, col := range cols {
			fields[i] = col.Value(row)
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}
	w.Flush()

	fmt.Fprintf(out, "page %d/%d (%d total)", st.Query.Page, st.Meta.TotalPages, st.Meta.Total)
	if st.Meta.HasPrevPage {
		fmt.Fprint(out, "  [prev]")
	}
	if st.Meta.HasNextPage {
		fmt.Fprint(out, "  [next]")
	}
	fmt.Fprintln(out)
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `commands:
  customers | suppliers | users   switch screen
  search <text>                   free-text search (empty clears)
  field name|email|phone|all      scope the search
  sort <column>                   toggle sort on a column
  filter <key> [value]            set or clear the categorical filter
  page <n> | next | prev          change page
  add field=value ...             create a record on the active screen
  edit <id> field=value ...       partially update a record
  delete <id> | restore <id>      soft-delete or restore a record (admin)
  deleted                         list soft-deleted records
  lookup email|phone <value>      exact single-record lookup
  refresh                         re-run the current query
  clear                           reset all filters to defaults
  dismiss                         hide the current error message
  export [csv|xlsx]               export the loaded rows (admin)
  login <email> <password>        sign in
  logout | whoami | quit
`)
}
