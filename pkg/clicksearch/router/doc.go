// Package router provides screen navigation over an explicit back stack.
//
// Routes are typed: MainRoute is the searchable list and DetailRoute carries
// the selected name. Each route also has a path form ("main",
// "details/{name}") that ParseRoute decodes at the navigation boundary.
//
// # Navigator
//
// The Navigator owns the stack and applies NavOptions the way a declarative
// navigation host would:
//
//	nav := router.NewNavigator()
//	nav.NavigateTo(router.DetailRoute{Name: "Peter"}, router.NavOptions{
//	    PopUpTo:         router.KindMain,
//	    SaveState:       true,
//	    LaunchSingleTop: true,
//	    RestoreState:    true,
//	})
//	nav.NavigateBack() // back on MainRoute
//
// Popping up to the main route on every selection keeps the stack at most
// two entries deep no matter how often the user goes list, detail, back.
//
// # Router
//
// Router runs blocking screen functions, one per route kind. A screen returns
// an Outcome and the router applies it to the navigator:
//
//	r := router.New()
//	r.Register(router.KindMain, func(ctx context.Context, e router.Entry) (router.Outcome, error) {
//	    resume, _ := e.State.(*ListResume) // nil on the first visit
//	    name, resume := listScreen(resume)
//	    return router.Navigate(router.DetailRoute{Name: name}, opts, resume), nil
//	})
//	r.Register(router.KindDetail, func(ctx context.Context, e router.Entry) (router.Outcome, error) {
//	    detailScreen(e.Route.(router.DetailRoute))
//	    return router.Back(), nil
//	})
//	err := r.Run(ctx)
//
// # Resume State
//
// The Resume value of an Outcome is attached to the entry being left. When
// the user navigates back to that entry its screen receives the value again
// through Entry.State. Entries popped with SaveState keep their state in a
// snapshot keyed by route path, which RestoreState reattaches on a later visit.
package router
