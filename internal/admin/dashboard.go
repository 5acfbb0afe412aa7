package admin

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// count - значение счётчика; OK == false, если загрузить не удалось
type count struct {
	Value int64
	OK    bool
}

type dashboardView struct {
	Employees   count
	Departments count
}

// dashboard параллельно запрашивает оба счётчика. Ошибка одного не мешает другому
// и не превращается в страницу ошибки: пишем в лог и показываем прочерк.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	var view dashboardView

	var g errgroup.Group
	g.Go(func() error {
		view.Employees = h.loadCount(r.Context(), "employees", h.api.CountEmployees)
		return nil
	})
	g.Go(func() error {
		view.Departments = h.loadCount(r.Context(), "departments", h.api.CountDepartments)
		return nil
	})
	_ = g.Wait()

	h.render(w, http.StatusOK, "dashboard", page{
		Title: "Dashboard",
		Tab:   "dashboard",
		Flash: popFlash(w, r),
		Data:  view,
	})
}

func (h *Handler) loadCount(ctx context.Context, what string, fetch func(context.Context) (int64, error)) count {
	n, err := fetch(ctx)
	if err != nil {
		h.logger.Error("failed to fetch count", slog.String("resource", what), slog.Any("error", err))
		return count{}
	}
	return count{Value: n, OK: true}
}
