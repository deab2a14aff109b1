// cmd/dashboard/screens.go
package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
	"github.com/haroldmz/stockdesk/internal/export"
	"github.com/haroldmz/stockdesk/internal/listview"
)

// screenController is what the command loop drives, regardless of which
// entity type the active screen shows.
type screenController interface {
	Title() string
	Load(ctx context.Context) error
	Search(ctx context.Context, text string) error
	SetSearchField(ctx context.Context, field string) error
	ToggleSort(ctx context.Context, field string) error
	SetFilter(ctx context.Context, key, value string) error
	ClearFilter(ctx context.Context, key string) error
	ChangePage(ctx context.Context, page int) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Refresh(ctx context.Context) error
	ClearFilters(ctx context.Context) error
	DismissError()
	Render(out io.Writer)
	ExportCSV(w io.Writer) error
	ExportXLSX() ([]byte, error)
}

// screen pairs a view with its table/export column mapping.
type screen[T any] struct {
	title   string
	view    *listview.View[T]
	columns []export.Column[T]
}

func (s *screen[T]) Title() string { return s.title }

func (s *screen[T]) Load(ctx context.Context) error    { return s.view.Load(ctx) }
func (s *screen[T]) Refresh(ctx context.Context) error { return s.view.Refresh(ctx) }
func (s *screen[T]) DismissError()                     { s.view.DismissError() }

func (s *screen[T]) Search(ctx context.Context, text string) error {
	return s.view.Search(ctx, text)
}

func (s *screen[T]) SetSearchField(ctx context.Context, field string) error {
	return s.view.SetSearchField(ctx, field)
}

func (s *screen[T]) ToggleSort(ctx context.Context, field string) error {
	return s.view.ToggleSort(ctx, field)
}

func (s *screen[T]) SetFilter(ctx context.Context, key, value string) error {
	return s.view.SetFilter(ctx, key, key, value)
}

func (s *screen[T]) ClearFilter(ctx context.Context, key string) error {
	return s.view.ClearFilter(ctx, key)
}

func (s *screen[T]) ChangePage(ctx context.Context, page int) error {
	return s.view.ChangePage(ctx, page)
}

// NextPage and PrevPage clamp through the pagination flags; the view itself
// does not defend against out-of-range pages.
func (s *screen[T]) NextPage(ctx context.Context) error {
	st := s.view.State()
	if !st.Meta.HasNextPage {
		return fmt.Errorf("already on the last page")
	}
	return s.view.ChangePage(ctx, st.Query.Page+1)
}

func (s *screen[T]) PrevPage(ctx context.Context) error {
	st := s.view.State()
	if !st.Meta.HasPrevPage {
		return fmt.Errorf("already on the first page")
	}
	return s.view.ChangePage(ctx, st.Query.Page-1)
}

func (s *screen[T]) ClearFilters(ctx context.Context) error {
	return s.view.ClearFilters(ctx)
}

func (s *screen[T]) Render(out io.Writer) {
	renderTable(out, s.title, s.view.State(), s.columns)
}

func (s *screen[T]) ExportCSV(w io.Writer) error {
	return export.WriteCSV(w, s.columns, s.view.State().Rows)
}

func (s *screen[T]) ExportXLSX() ([]byte, error) {
	return export.XLSXBytes(s.title, s.columns, s.view.State().Rows)
}

// Fetchers translate view query state into application-service calls. An
// empty search lists; "all" runs the cascading multi-field search; anything
// else is field-scoped.

func listParamsFor(q listview.Query) ports.ListParams {
	params := ports.ListParams{
		Take:      q.PageSize,
		Skip:      (q.Page - 1) * q.PageSize,
		SortBy:    q.SortBy,
		SortOrder: string(q.SortOrder),
	}
	if q.FilterKey != "" {
		params.Filters = map[string]string{q.FilterKey: q.FilterValue}
	}
	return params
}

func searchParamsFor(q listview.Query) ports.SearchParams {
	return ports.SearchParams{
		Take:      q.PageSize,
		Skip:      (q.Page - 1) * q.PageSize,
		SortBy:    q.SortBy,
		SortOrder: string(q.SortOrder),
	}
}

func customerFetcher(svc ports.CustomerService) listview.Fetcher[domain.Customer] {
	return func(ctx context.Context, q listview.Query) (*ports.Page[domain.Customer], error) {
		switch {
		case q.Search == "":
			return svc.List(ctx, listParamsFor(q))
		case q.SearchField == listview.SearchAllFields:
			return svc.Search(ctx, q.Search, searchParamsFor(q))
		default:
			return svc.SearchByField(ctx, q.SearchField, q.Search, searchParamsFor(q))
		}
	}
}

func supplierFetcher(svc ports.SupplierService) listview.Fetcher[domain.Supplier] {
	return func(ctx context.Context, q listview.Query) (*ports.Page[domain.Supplier], error) {
		switch {
		case q.Search == "":
			return svc.List(ctx, listParamsFor(q))
		case q.SearchField == listview.SearchAllFields:
			return svc.Search(ctx, q.Search, searchParamsFor(q))
		default:
			return svc.SearchByField(ctx, q.SearchField, q.Search, searchParamsFor(q))
		}
	}
}

func userFetcher(svc ports.UserService) listview.Fetcher[domain.User] {
	return func(ctx context.Context, q listview.Query) (*ports.Page[domain.User], error) {
		switch {
		case q.Search == "":
			return svc.List(ctx, listParamsFor(q))
		case q.SearchField == listview.SearchAllFields:
			return svc.Search(ctx, q.Search, searchParamsFor(q))
		default:
			return svc.SearchByField(ctx, q.SearchField, q.Search, searchParamsFor(q))
		}
	}
}

// entityOps holds the record-level commands that cannot be expressed
// generically because their inputs differ per entity.
type entityOps struct {
	add     func(ctx context.Context, fields map[string]string) error
	edit    func(ctx context.Context, id int64, fields map[string]string) error
	remove  func(ctx context.Context, id int64) error
	restore func(ctx context.Context, id int64) error
	deleted func(ctx context.Context, out io.Writer) error
	lookup  func(ctx context.Context, out io.Writer, field, value string) error
}

func fieldPtr(fields map[string]string, key string) *string {
	if v, ok := fields[key]; ok {
		return &v
	}
	return nil
}

func customerOps(svc ports.CustomerService, view *listview.View[domain.Customer], cols []export.Column[domain.Customer], pageSize int) entityOps {
	return entityOps{
		add: func(ctx context.Context, fields map[string]string) error {
			created, err := svc.Create(ctx, ports.CustomerInput{
				Name:    fields["name"],
				Email:   fields["email"],
				Phone:   fields["phone"],
				Address: fields["address"],
				Notes:   fields["notes"],
			})
			if err != nil {
				return err
			}
			view.ApplyCreated(*created)
			return nil
		},
		edit: func(ctx context.Context, id int64, fields map[string]string) error {
			updated, err := svc.Update(ctx, id, ports.CustomerPatch{
				Name:    fieldPtr(fields, "name"),
				Email:   fieldPtr(fields, "email"),
				Phone:   fieldPtr(fields, "phone"),
				Address: fieldPtr(fields, "address"),
				Notes:   fieldPtr(fields, "notes"),
			})
			if err != nil {
				return err
			}
			view.ApplyUpdated(func(c domain.Customer) bool { return c.ID == id }, *updated)
			return nil
		},
		remove: func(ctx context.Context, id int64) error {
			ok, err := svc.Delete(ctx, id)
			if err != nil {
				return err
			}
			if ok {
				view.ApplyRemoved(func(c domain.Customer) bool { return c.ID == id })
			}
			return nil
		},
		restore: func(ctx context.Context, id int64) error {
			if _, err := svc.Restore(ctx, id); err != nil {
				return err
			}
			return view.Refresh(ctx)
		},
		deleted: func(ctx context.Context, out io.Writer) error {
			page, err := svc.ListDeleted(ctx, ports.ListParams{Take: pageSize, Skip: 0})
			if err != nil {
				return err
			}
			renderRows(out, "Deleted customers", page.Items, cols)
			return nil
		},
		lookup: func(ctx context.Context, out io.Writer, field, value string) error {
			var customer *domain.Customer
			var err error
			switch field {
			case "email":
				customer, err = svc.GetByEmail(ctx, value)
			case "phone":
				customer, err = svc.GetByPhone(ctx, value)
			default:
				return fmt.Errorf("lookup supports email or phone")
			}
			if err != nil {
				return err
			}
			if customer == nil {
				fmt.Fprintln(out, "no match")
				return nil
			}
			renderRows(out, "Lookup", []domain.Customer{*customer}, cols)
			return nil
		},
	}
}

func supplierOps(svc ports.SupplierService, view *listview.View[domain.Supplier], cols []export.Column[domain.Supplier], pageSize int) entityOps {
	return entityOps{
		add: func(ctx context.Context, fields map[string]string) error {
			created, err := svc.Create(ctx, ports.SupplierInput{
				Name:    fields["name"],
				Company: fields["company"],
				Email:   fields["email"],
				Phone:   fields["phone"],
				Address: fields["address"],
				Notes:   fields["notes"],
			})
			if err != nil {
				return err
			}
			view.ApplyCreated(*created)
			return nil
		},
		edit: func(ctx context.Context, id int64, fields map[string]string) error {
			updated, err := svc.Update(ctx, id, ports.SupplierPatch{
				Name:    fieldPtr(fields, "name"),
				Company: fieldPtr(fields, "company"),
				Email:   fieldPtr(fields, "email"),
				Phone:   fieldPtr(fields, "phone"),
				Address: fieldPtr(fields, "address"),
				Notes:   fieldPtr(fields, "notes"),
			})
			if err != nil {
				return err
			}
			view.ApplyUpdated(func(s domain.Supplier) bool { return s.ID == id }, *updated)
			return nil
		},
		remove: func(ctx context.Context, id int64) error {
			ok, err := svc.Delete(ctx, id)
			if err != nil {
				return err
			}
			if ok {
				view.ApplyRemoved(func(s domain.Supplier) bool { return s.ID == id })
			}
			return nil
		},
		restore: func(ctx context.Context, id int64) error {
			if _, err := svc.Restore(ctx, id); err != nil {
				return err
			}
			return view.Refresh(ctx)
		},
		deleted: func(ctx context.Context, out io.Writer) error {
			page, err := svc.ListDeleted(ctx, ports.ListParams{Take: pageSize, Skip: 0})
			if err != nil {
				return err
			}
			renderRows(out, "Deleted suppliers", page.Items, cols)
			return nil
		},
		lookup: func(ctx context.Context, out io.Writer, field, value string) error {
			var supplier *domain.Supplier
			var err error
			switch field {
			case "email":
				supplier, err = svc.GetByEmail(ctx, value)
			case "phone":
				supplier, err = svc.GetByPhone(ctx, value)
			default:
				return fmt.Errorf("lookup supports email or phone")
			}
			if err != nil {
				return err
			}
			if supplier == nil {
				fmt.Fprintln(out, "no match")
				return nil
			}
			renderRows(out, "Lookup", []domain.Supplier{*supplier}, cols)
			return nil
		},
	}
}

func userOps(svc ports.UserService, view *listview.View[domain.User], cols []export.Column[domain.User], pageSize int) entityOps {
	return entityOps{
		add: func(ctx context.Context, fields map[string]string) error {
			created, err := svc.Create(ctx, ports.UserInput{
				Name:  fields["name"],
				Email: fields["email"],
				Phone: fields["phone"],
				Role:  domain.Role(fields["role"]),
			})
			if err != nil {
				return err
			}
			view.ApplyCreated(*created)
			return nil
		},
		edit: func(ctx context.Context, id int64, fields map[string]string) error {
			patch := ports.UserPatch{
				Name:  fieldPtr(fields, "name"),
				Email: fieldPtr(fields, "email"),
				Phone: fieldPtr(fields, "phone"),
			}
			if v, ok := fields["role"]; ok {
				role := domain.Role(v)
				patch.Role = &role
			}
			if v, ok := fields["active"]; ok {
				active, err := strconv.ParseBool(v)
				if err != nil {
					return fmt.Errorf("active must be true or false")
				}
				patch.Active = &active
			}
			updated, err := svc.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			view.ApplyUpdated(func(u domain.User) bool { return u.ID == id }, *updated)
			return nil
		},
		remove: func(ctx context.Context, id int64) error {
			ok, err := svc.Delete(ctx, id)
			if err != nil {
				return err
			}
			if ok {
				view.ApplyRemoved(func(u domain.User) bool { return u.ID == id })
			}
			return nil
		},
		restore: func(ctx context.Context, id int64) error {
			if _, err := svc.Restore(ctx, id); err != nil {
				return err
			}
			return view.Refresh(ctx)
		},
		deleted: func(ctx context.Context, out io.Writer) error {
			page, err := svc.ListDeleted(ctx, ports.ListParams{Take: pageSize, Skip: 0})
			if err != nil {
				return err
			}
			renderRows(out, "Deleted users", page.Items, cols)
			return nil
		},
		lookup: func(ctx context.Context, out io.Writer, field, value string) error {
			return fmt.Errorf("lookup is not available for users")
		},
	}
}

func buildScreens(cfg screenConfig, deps *dependencies) (map[string]screenController, map[string]entityOps) {
	now := time.Now
	opts := listview.Options{
		PageSize:  cfg.pageSize,
		SortBy:    cfg.sortBy,
		SortOrder: listview.SortOrder(cfg.sortOrder),
	}

	customerCols := export.CustomerColumns(now)
	supplierCols := export.SupplierColumns(now)
	userCols := export.UserColumns()

	customerView := listview.New(customerFetcher(deps.customers), opts, cfg.logger)
	supplierView := listview.New(supplierFetcher(deps.suppliers), opts, cfg.logger)
	userView := listview.New(userFetcher(deps.users), opts, cfg.logger)

	screens := map[string]screenController{
		"customers": &screen[domain.Customer]{title: "Customers", view: customerView, columns: customerCols},
		"suppliers": &screen[domain.Supplier]{title: "Suppliers", view: supplierView, columns: supplierCols},
		"users":     &screen[domain.User]{title: "Users", view: userView, columns: userCols},
	}
	ops := map[string]entityOps{
		"customers": customerOps(deps.customers, customerView, customerCols, cfg.pageSize),
		"suppliers": supplierOps(deps.suppliers, supplierView, supplierCols, cfg.pageSize),
		"users":     userOps(deps.users, userView, userCols, cfg.pageSize),
	}
	return screens, ops
}
