package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/trafficgraph/bfs"
	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/dfs"
	"github.com/katalvlaran/trafficgraph/dijkstra"
)

// Menu entries, in display order.
const (
	menuAddIntersection    = "Add intersection"
	menuRemoveIntersection = "Remove intersection"
	menuAddStreet          = "Add street"
	menuRemoveStreet       = "Remove street"
	menuShowNetwork        = "Show network"
	menuNeighbors          = "List neighbors"
	menuExistsRoute        = "Route exists?"
	menuListPaths          = "List paths"
	menuFastestRoute       = "Fastest route"
	menuQuit               = "Quit"
)

// menuLoop drives the interactive session until Quit or prompt interrupt.
// Engine errors are reported and the loop continues; only prompt-level
// failures end the session.
func menuLoop(g *core.Graph, out io.Writer) error {
	for {
		var choice string
		prompt := &survey.Select{
			Message: "What next?",
			Options: []string{
				menuAddIntersection, menuRemoveIntersection,
				menuAddStreet, menuRemoveStreet,
				menuShowNetwork, menuNeighbors,
				menuExistsRoute, menuListPaths, menuFastestRoute,
				menuQuit,
			},
			PageSize: 10,
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}

			return err
		}
		if choice == menuQuit {
			return nil
		}

		if err := dispatch(g, out, choice); err != nil {
			// Validation and not-found failures are normal session
			// events; report and keep prompting.
			log.Error(err)
		}
	}
}

func dispatch(g *core.Graph, out io.Writer, choice string) error {
	switch choice {
	case menuAddIntersection:
		return doAddIntersection(g, out)
	case menuRemoveIntersection:
		return doRemoveIntersection(g, out)
	case menuAddStreet:
		return doAddStreet(g, out)
	case menuRemoveStreet:
		return doRemoveStreet(g, out)
	case menuShowNetwork:
		return doShowNetwork(g, out)
	case menuNeighbors:
		return doNeighbors(g, out)
	case menuExistsRoute:
		return doExistsRoute(g, out)
	case menuListPaths:
		return doListPaths(g, out)
	case menuFastestRoute:
		return doFastestRoute(g, out)
	}

	return fmt.Errorf("unknown menu choice %q", choice)
}

// askName prompts for an intersection name. The raw answer is passed to
// the engine unparsed so validation failures surface as engine errors.
func askName(label string) (core.NodeID, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: label + ":"}, &answer); err != nil {
		return "", err
	}

	return core.NodeID(answer), nil
}

// askMinutes prompts for a travel time in decimal minutes.
func askMinutes() (core.Minutes, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: "Travel time (minutes):"}, &answer); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		// A non-numeric answer is the same error kind as a bad weight.
		return 0, fmt.Errorf("%w: %q is not a number", core.ErrInvalidWeight, answer)
	}

	return core.Minutes(v), nil
}

func doAddIntersection(g *core.Graph, out io.Writer) error {
	name, err := askName("Intersection name")
	if err != nil {
		return err
	}
	if err = g.AddIntersection(name); err != nil {
		return err
	}
	fmt.Fprintf(out, "Intersection %q present.\n", name)

	return nil
}

func doRemoveIntersection(g *core.Graph, out io.Writer) error {
	name, err := askName("Intersection name")
	if err != nil {
		return err
	}
	if err = g.RemoveIntersection(name); err != nil {
		return err
	}
	fmt.Fprintf(out, "Intersection %q removed.\n", name)

	return nil
}

func doAddStreet(g *core.Graph, out io.Writer) error {
	from, err := askName("Origin")
	if err != nil {
		return err
	}
	to, err := askName("Destination")
	if err != nil {
		return err
	}
	t, err := askMinutes()
	if err != nil {
		return err
	}
	if err = g.AddStreet(from, to, t); err != nil {
		return err
	}
	fmt.Fprintf(out, "Street %q -> %q (%.2f min) set.\n", from, to, float64(t))

	return nil
}

func doRemoveStreet(g *core.Graph, out io.Writer) error {
	from, err := askName("Origin")
	if err != nil {
		return err
	}
	to, err := askName("Destination")
	if err != nil {
		return err
	}
	if err = g.RemoveStreet(from, to); err != nil {
		return err
	}
	fmt.Fprintf(out, "Street %q -> %q removed.\n", from, to)

	return nil
}

func doShowNetwork(g *core.Graph, out io.Writer) error {
	if g.NodeCount() == 0 {
		fmt.Fprintln(out, "The network is empty.")

		return nil
	}
	fmt.Fprintln(out, g.Render())
	fmt.Fprintf(out, "(%d intersections, %d streets)\n", g.NodeCount(), g.EdgeCount())

	return nil
}

func doNeighbors(g *core.Graph, out io.Writer) error {
	name, err := askName("Intersection name")
	if err != nil {
		return err
	}
	nbrs, err := g.Neighbors(name)
	if err != nil {
		return err
	}
	if len(nbrs) == 0 {
		fmt.Fprintf(out, "%q has no outgoing streets.\n", name)

		return nil
	}
	for _, nb := range nbrs {
		fmt.Fprintf(out, "  %s (%.2f min)\n", nb.To, float64(nb.Time))
	}

	return nil
}

func doExistsRoute(g *core.Graph, out io.Writer) error {
	from, err := askName("Origin")
	if err != nil {
		return err
	}
	to, err := askName("Destination")
	if err != nil {
		return err
	}
	ok, err := bfs.ExistsRoute(g, from, to)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(out, "Yes, %q can be reached from %q.\n", to, from)
	} else {
		fmt.Fprintf(out, "No, %q cannot be reached from %q.\n", to, from)
	}

	return nil
}

func doListPaths(g *core.Graph, out io.Writer) error {
	from, err := askName("Origin")
	if err != nil {
		return err
	}
	paths, err := dfs.ListPaths(g, from)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintf(out, "No paths start at %q.\n", from)

		return nil
	}
	for _, path := range paths {
		fmt.Fprintf(out, "  %s\n", joinPath(path))
	}

	return nil
}

func doFastestRoute(g *core.Graph, out io.Writer) error {
	from, err := askName("Origin")
	if err != nil {
		return err
	}
	to, err := askName("Destination")
	if err != nil {
		return err
	}
	route, err := dijkstra.FastestRoute(g, from, to)
	if err != nil {
		return err
	}
	if !route.Reachable() {
		fmt.Fprintf(out, "%q cannot be reached from %q.\n", to, from)

		return nil
	}
	fmt.Fprintf(out, "Fastest route: %s (%.2f min)\n", joinPath(route.Path), route.TotalTime)

	return nil
}

func joinPath(path []core.NodeID) string {
	s := ""
	for i, id := range path {
		if i > 0 {
			s += " -> "
		}
		s += string(id)
	}

	return s
}
