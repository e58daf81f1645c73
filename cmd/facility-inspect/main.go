package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"facility-inspect/internal/client"
	"facility-inspect/internal/config"
	"facility-inspect/internal/domain"
	"facility-inspect/internal/export"
	"facility-inspect/internal/form"
	"facility-inspect/internal/geo"
	"facility-inspect/internal/list"
	"facility-inspect/internal/logger"
	"facility-inspect/internal/session"
	"facility-inspect/internal/stats"

	"go.uber.org/zap"
)

const usage = `facility-inspect: facility inspection records client

Usage: facility-inspect <command> [flags]

Commands:
  register   create an account
  login      authenticate and store the session
  logout     clear the stored session
  whoami     print the logged-in username
  list       list inspections (filterable, paginated)
  show       print one inspection as JSON
  create     create an inspection from a JSON file
  edit       fetch, mutate and save an inspection
  delete     delete an inspection (asks for confirmation)
  stats      aggregate statistics over all inspections
  map        geographic distribution of inspections
  export     write inspections to an .xlsx file
`

type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	session *session.Manager
	client  *client.Client
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "facility-inspect")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	sess := session.NewManager(session.NewFileKV(cfg.Session.Path))
	api := client.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, sess, log)

	a := &app{cfg: cfg, logger: log, session: sess, client: api}

	ctx := context.Background()
	switch os.Args[1] {
	case "register":
		err = a.cmdRegister(ctx, os.Args[2:])
	case "login":
		err = a.cmdLogin(ctx, os.Args[2:])
	case "logout":
		err = a.cmdLogout()
	case "whoami":
		err = a.cmdWhoami()
	case "list":
		err = a.cmdList(ctx, os.Args[2:])
	case "show":
		err = a.cmdShow(ctx, os.Args[2:])
	case "create":
		err = a.cmdCreate(ctx, os.Args[2:])
	case "edit":
		err = a.cmdEdit(ctx, os.Args[2:])
	case "delete":
		err = a.cmdDelete(ctx, os.Args[2:])
	case "stats":
		err = a.cmdStats(ctx)
	case "map":
		err = a.cmdMap(ctx)
	case "export":
		err = a.cmdExport(ctx, os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if client.IsUnauthorized(err) {
			fmt.Fprintln(os.Stderr, "Run `facility-inspect login` and try again.")
		}
		os.Exit(1)
	}
}

func (a *app) requireAuth() error {
	if !a.session.Authenticated() {
		return fmt.Errorf("not logged in; run `facility-inspect login` first")
	}
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "account name")
	password := fs.String("password", "", "password (min 6 characters)")
	fs.Parse(args)
	if *username == "" || *password == "" {
		return fmt.Errorf("register: -username and -password are required")
	}
	if len(*password) < 6 {
		return fmt.Errorf("register: password must be at least 6 characters")
	}
	if err := a.client.Register(ctx, *username, *password); err != nil {
		return err
	}
	fmt.Println("Registration successful! You can now login.")
	return nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "account name")
	password := fs.String("password", "", "password")
	fs.Parse(args)
	if *username == "" || *password == "" {
		return fmt.Errorf("login: -username and -password are required")
	}
	if _, err := a.client.Login(ctx, *username, *password); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", *username)
	return nil
}

func (a *app) cmdLogout() error {
	if err := a.client.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func (a *app) cmdWhoami() error {
	if !a.session.Authenticated() {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Println(a.session.Username())
	return nil
}

// listFilterFlags registers the per-column filter flags shared by list and
// export and returns a closure applying them to browsing state.
func listFilterFlags(fs *flag.FlagSet) func(*list.State) {
	values := make(map[string]*string, len(list.TextFields)+1)
	for _, field := range list.TextFields {
		name := strings.ReplaceAll(field, "_", "-")
		values[field] = fs.String(name, "", "filter: "+field+" contains (case-insensitive)")
	}
	values[list.StatusField] = fs.String("status", "", "filter: full_inspection_completed equals (Yes/No/Partial)")
	return func(st *list.State) {
		for field, v := range values {
			if *v != "" {
				st.SetFilter(field, *v)
			}
		}
	}
}

func (a *app) cmdList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	applyFilters := listFilterFlags(fs)
	page := fs.Int("page", 1, "page number")
	facets := fs.Bool("facets", false, "print the distinct values per filterable column")
	fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}
	records, err := a.client.ListInspections(ctx)
	if err != nil {
		return err
	}

	st := list.New(records, a.cfg.List.PageSize)
	applyFilters(st)
	st.SetPage(*page)

	if *facets {
		f := st.Facets()
		for _, field := range list.TextFields {
			fmt.Printf("%s: %s\n", field, strings.Join(f[field], ", "))
		}
		return nil
	}

	p := st.Page()
	fmt.Printf("%-6s %-28s %-18s %-24s %-12s\n", "ID", "BUILDING", "FACILITY TYPE", "LOCATION", "CREATED")
	for i := range p.Items {
		r := &p.Items[i]
		fmt.Printf("%-6d %-28s %-18s %-24s %-12s\n",
			r.ID, r.BuildingName, r.FacilityType,
			r.MacroArea+" - "+r.MicroArea,
			createdDate(r.CreatedAt),
		)
	}
	fmt.Printf("\n%d of %d inspection(s), page %s\n",
		len(p.Items), p.TotalItems, renderWindow(p.Number, p.TotalPages))
	return nil
}

// renderWindow prints the page row the way the list UI shows it,
// e.g. "1 ... 4 [5] 6 ... 12".
func renderWindow(current, totalPages int) string {
	var parts []string
	for _, p := range list.Window(current, totalPages) {
		switch {
		case p == list.Ellipsis:
			parts = append(parts, "...")
		case p == current:
			parts = append(parts, fmt.Sprintf("[%d]", p))
		default:
			parts = append(parts, fmt.Sprintf("%d", p))
		}
	}
	return strings.Join(parts, " ")
}

func createdDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

func (a *app) cmdShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	id := fs.Int("id", 0, "inspection id")
	fs.Parse(args)
	if *id <= 0 {
		return fmt.Errorf("show: -id is required")
	}
	if err := a.requireAuth(); err != nil {
		return err
	}
	rec, err := a.client.GetInspection(ctx, *id)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func (a *app) cmdCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	file := fs.String("file", "", "JSON file with the inspection record (use - for stdin)")
	fs.Parse(args)
	if *file == "" {
		return fmt.Errorf("create: -file is required")
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	var data []byte
	var err error
	if *file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(*file)
	}
	if err != nil {
		return err
	}

	var rec domain.InspectionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("create: invalid JSON: %w", err)
	}

	// Round-trip through form state so the payload honors the same
	// invariants an interactive edit would (defaults, sentinels, nulling of
	// disabled conditional fields).
	state := form.ToFormState(rec)
	if err := validateRequired(&state); err != nil {
		return err
	}
	created, err := a.client.CreateInspection(ctx, form.ToAPIPayload(state))
	if err != nil {
		return err
	}
	fmt.Printf("Created inspection %d\n", created.ID)
	return nil
}

func (a *app) cmdDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int("id", 0, "inspection id")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	fs.Parse(args)
	if *id <= 0 {
		return fmt.Errorf("delete: -id is required")
	}
	if err := a.requireAuth(); err != nil {
		return err
	}
	if !*yes {
		fmt.Printf("Are you sure you want to delete inspection %d? [y/N] ", *id)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}
	if err := a.client.DeleteInspection(ctx, *id); err != nil {
		return err
	}
	fmt.Println("Inspection deleted successfully")
	return nil
}

func (a *app) cmdStats(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	records, err := a.client.ListInspections(ctx)
	if err != nil {
		return err
	}
	s := stats.Compute(records)

	fmt.Printf("Total inspections:   %d\n", s.Total)
	fmt.Printf("  Completed:         %d\n", s.Completed)
	fmt.Printf("  Incomplete:        %d\n\n", s.Incomplete)

	fmt.Println("Facilities by type:")
	for _, k := range stats.SortedKeys(s.FacilitiesByType) {
		fmt.Printf("  %-24s %d\n", k, s.FacilitiesByType[k])
	}

	fmt.Println("\nBuilding conditions (Poor/Average/Good/Excellent):")
	printConditions := func(label string, counts map[string]int) {
		fmt.Printf("  %-24s", label)
		for _, c := range domain.ConditionVocabulary {
			fmt.Printf(" %s=%d", c, counts[c])
		}
		fmt.Println()
	}
	printConditions("Exterior cladding", s.ExteriorConditions)
	printConditions("Interior architectural", s.InteriorConditions)
	printConditions("Roofing", s.RoofingConditions)

	fmt.Println("\nHVAC types:")
	for _, k := range stats.SortedKeys(s.HVACTypeCounts) {
		fmt.Printf("  %-24s %d\n", k, s.HVACTypeCounts[k])
	}

	fmt.Println("\nPower sources:")
	for _, k := range stats.SortedKeys(s.PowerSourceCounts) {
		fmt.Printf("  %-24s %d\n", k, s.PowerSourceCounts[k])
	}

	fmt.Printf("\nSprinkler:  Yes=%d No=%d\n", s.SprinklerCounts["Yes"], s.SprinklerCounts["No"])
	fmt.Printf("Fire alarm: Yes=%d No=%d\n", s.FireAlarmCounts["Yes"], s.FireAlarmCounts["No"])
	return nil
}

func (a *app) cmdMap(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	records, err := a.client.ListInspections(ctx)
	if err != nil {
		return err
	}
	located := geo.Located(records)
	if len(located) == 0 {
		fmt.Println("No inspection locations with valid coordinates found.")
		return nil
	}
	for i := range located {
		r := &located[i]
		fmt.Printf("%s (%s)\n  Location: %s, %s\n  Coordinates: %.6f, %.6f\n",
			r.BuildingName, r.BuildingNumber, r.MacroArea, r.MicroArea,
			*r.Latitude, *r.Longitude)
	}
	if a.cfg.Map.APIKey != "" {
		fmt.Printf("\nMap: %s\n", geo.EmbedURL(records, a.cfg.Map.APIKey, a.cfg.Map.Zoom))
	}
	return nil
}

func (a *app) cmdExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	applyFilters := listFilterFlags(fs)
	out := fs.String("out", "inspections.xlsx", "output .xlsx path")
	fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}
	records, err := a.client.ListInspections(ctx)
	if err != nil {
		return err
	}
	st := list.New(records, a.cfg.List.PageSize)
	applyFilters(st)

	data, err := export.GenerateInspectionExport(st.Filtered())
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %d inspection(s) to %s\n", len(st.Filtered()), *out)
	return nil
}
