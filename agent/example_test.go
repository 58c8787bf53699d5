package agent_test

import (
	"fmt"

	"github.com/polyrl/agentkit/agent"
)

func ExampleNewFixed() {
	stub := agent.NewFixed[string, string]("pass")

	for _, board := range []string{"opening", "midgame", "endgame"} {
		move, _ := stub.Act(board)
		fmt.Println(move)
	}

	// Output:
	// pass
	// pass
	// pass
}

func ExampleNewCycle() {
	rotor, err := agent.NewCycle[string, string]([]string{"rock", "paper", "scissors"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i := 0; i < 4; i++ {
		move, _ := rotor.Act("any observation")
		fmt.Println(move)
	}

	// Output:
	// rock
	// paper
	// scissors
	// rock
}

func ExampleAdapt() {
	// The inner agent only understands a hand of cards.
	type hand struct {
		Cards []string
	}

	// The driver exposes a richer table state.
	type table struct {
		Hand hand
		Pot  int
	}

	inner, err := agent.NewFunc(func(h hand) (string, error) {
		if len(h.Cards) > 1 {
			return "raise", nil
		}
		return "fold", nil
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	adapted, err := agent.Adapt(inner, func(t table) (hand, error) {
		return t.Hand, nil
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	move, _ := adapted.Act(table{Hand: hand{Cards: []string{"Ah", "Kh"}}, Pot: 40})
	fmt.Println(move)

	// Output:
	// raise
}
