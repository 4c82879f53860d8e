package clicksearch

import (
	"context"
	"errors"

	"github.com/anunobi/clicksearch/pkg/clicksearch/internal"
	"github.com/anunobi/clicksearch/pkg/clicksearch/names"
	"github.com/anunobi/clicksearch/pkg/clicksearch/router"
	"github.com/anunobi/clicksearch/pkg/clicksearch/screens"
)

// pendingNavigation records the list controller's navigation request so
// the screen can hand it to the router as an outcome.
type pendingNavigation struct {
	route router.Route
	opts  router.NavOptions
	set   bool
}

func (p *pendingNavigation) NavigateTo(route router.Route, opts router.NavOptions) {
	p.route, p.opts, p.set = route, opts, true
}

func (p *pendingNavigation) take() (router.Route, router.NavOptions, bool) {
	route, opts, ok := p.route, p.opts, p.set
	*p = pendingNavigation{}
	return route, opts, ok
}

// Run shows the search list over repo and blocks until the user leaves the
// app. Init must have been called.
func Run(ctx context.Context, repo names.Repository) error {
	logger := internal.GetLogger()

	pending := &pendingNavigation{}
	list := screens.NewListController(repo, pending)
	details := screens.DetailController{}

	nav := router.NewNavigator()
	nav.SetLogger(logger)

	r := router.NewWithNavigator(nav).
		Register(router.KindMain, func(ctx context.Context, entry router.Entry) (router.Outcome, error) {
			return searchListScreen(ctx, list, pending, entry)
		}).
		Register(router.KindDetail, func(ctx context.Context, entry router.Entry) (router.Outcome, error) {
			return detailScreen(ctx, details, entry)
		}).
		OnRootBack(ConfirmExit)

	logger.Info("Starting", "names", len(repo.Names()))

	err := r.Run(ctx)
	if errors.Is(err, ErrExitRequested) {
		logger.Info("Exit requested")
		return nil
	}
	return err
}

func searchListScreen(ctx context.Context, list *screens.ListController, pending *pendingNavigation, entry router.Entry) (router.Outcome, error) {
	if saved, ok := entry.State.(screens.ListState); ok {
		list.Restore(saved)
	}

	result, err := SearchList(ctx, list, DefaultSearchListSettings())
	if err != nil {
		return router.Outcome{}, err
	}

	switch result.Action {
	case ListActionSelected:
		route, opts, ok := pending.take()
		if !ok {
			return router.Outcome{}, errors.New("selection without a navigation request")
		}
		return router.Navigate(route, opts, list.Snapshot()), nil
	default:
		back := router.Back()
		back.Resume = list.Snapshot()
		return back, nil
	}
}

func detailScreen(ctx context.Context, details screens.DetailController, entry router.Entry) (router.Outcome, error) {
	if _, err := DetailScreen(ctx, details.RenderPath(entry.Route.Path()), DefaultDetailScreenSettings()); err != nil {
		return router.Outcome{}, err
	}
	return router.Back(), nil
}
