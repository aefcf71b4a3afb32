package generator

import (
	"fmt"
	"strings"

	"github.com/fjglira/suitegen/internal/domain"
	"github.com/fjglira/suitegen/internal/schema"
)

// traceFragment captures page state, or the command target plus the
// assertion target when there is one.
func traceFragment(kind schema.Kind, cmd domain.Command) string {
	const header = "\n      // Tracing...\n"
	if kind == schema.KindPage {
		return header + fmt.Sprintf("      await bs.tracePage( %q );", cmd.ID)
	}

	props := []string{traceProp(cmd.Target)}
	if cmd.Assert != nil && cmd.Assert.Target != "" {
		props = append(props, traceProp(cmd.Assert.Target))
	}
	return header + fmt.Sprintf("      await bs.traceTarget( %q, { %s });", cmd.ID, strings.Join(props, ", "))
}

func traceProp(name string) string {
	return fmt.Sprintf("%q: async () => await %s()", name, name)
}

// interactiveFragment blocks until the runtime flags the command as next.
func interactiveFragment(id string) string {
	return fmt.Sprintf("\n      await bs.page.waitForSelector(`body[data-puppetry-next=\"%s\"]`, { timeout: %d });",
		id, domain.InteractiveTimeout)
}
