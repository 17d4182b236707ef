// Profiling:
// go build ./profile/commands
// go tool pprof -http=":8000" -nodefraction=0.001 ./commands mem.pprof

package main

import (
	"github.com/BD103/nonsend"
	"github.com/pkg/profile"
)

type handle struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 10000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters)
	p.Stop()
}

func run(rounds, iters int) {
	for range rounds {
		w := nonsend.NewWorld(1024)
		cmds := nonsend.NewCommands()

		for range iters {
			cmds.Add(nonsend.InsertNonSendResource(func() *handle {
				return &handle{V: 1}
			}))
			cmds.Add(nonsend.InitNonSendResource[handle]())
			cmds.Add(nonsend.RemoveNonSendResource[handle]())
			cmds.Apply(w)
		}
	}
}
