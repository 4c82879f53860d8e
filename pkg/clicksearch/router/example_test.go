package router_test

import (
	"context"
	"fmt"

	"github.com/anunobi/clicksearch/pkg/clicksearch/router"
)

// Resume state for the list screen
type listResume struct {
	Query string
	Focus int
}

var selectOpts = router.NavOptions{
	PopUpTo:         router.KindMain,
	SaveState:       true,
	LaunchSingleTop: true,
	RestoreState:    true,
}

// Example demonstrates a list -> detail -> back -> exit flow.
func Example() {
	r := router.New()

	listVisits := 0

	r.Register(router.KindMain, func(ctx context.Context, e router.Entry) (router.Outcome, error) {
		listVisits++

		if listVisits == 1 {
			fmt.Println("List: selecting Peter")
			return router.Navigate(router.DetailRoute{Name: "Peter"}, selectOpts, &listResume{Query: "pe", Focus: 0}), nil
		}

		resume := e.State.(*listResume)
		fmt.Printf("List: restored query %q, exiting\n", resume.Query)
		return router.Exit(), nil
	})

	r.Register(router.KindDetail, func(ctx context.Context, e router.Entry) (router.Outcome, error) {
		name, _ := e.Route.(router.DetailRoute).Arg()
		fmt.Printf("Detail: showing %s, going back\n", name)
		return router.Back(), nil
	})

	_ = r.Run(context.Background())

	// Output:
	// List: selecting Peter
	// Detail: showing Peter, going back
	// List: restored query "pe", exiting
}

// Example_backStackBound shows that repeated selections never grow the stack.
func Example_backStackBound() {
	nav := router.NewNavigator()

	for _, name := range []string{"Kennedy", "John", "Anita"} {
		nav.NavigateTo(router.DetailRoute{Name: name}, selectOpts)
		fmt.Println(nav.Current().Route.Path(), nav.Depth())
	}

	nav.NavigateBack()
	fmt.Println(nav.Current().Route.Path(), nav.Depth())
	fmt.Println(nav.NavigateBack())

	// Output:
	// details/Kennedy 2
	// details/John 2
	// details/Anita 2
	// main 1
	// false
}

// ExampleParseRoute decodes the path form of routes.
func ExampleParseRoute() {
	for _, path := range []string{"main", "details/Camela", "details/"} {
		route, _ := router.ParseRoute(path)
		switch r := route.(type) {
		case router.MainRoute:
			fmt.Println("main screen")
		case router.DetailRoute:
			if name, ok := r.Arg(); ok {
				fmt.Println("detail for", name)
			} else {
				fmt.Println("detail without a name")
			}
		}
	}

	// Output:
	// main screen
	// detail for Camela
	// detail without a name
}
