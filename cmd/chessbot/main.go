package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hailam/chessbot/internal/board"
	"github.com/hailam/chessbot/internal/engine"
)

var (
	fen     = flag.String("fen", board.StartingFEN, "position to search, in FEN notation (en-passant field is a raw decimal square)")
	seconds = flag.Float64("seconds", 1.0, "search time budget in seconds")
)

func main() {
	flag.Parse()

	b, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("chessbot: %v", err)
	}

	budget := engine.NewBudget(time.Duration(*seconds * float64(time.Second)))
	from, to, err := engine.FindBestMove(b, budget)
	if err != nil {
		if errors.Is(err, engine.ErrNoBestMove) {
			log.Fatal("chessbot: no legal move found within the time budget")
		}
		log.Fatalf("chessbot: %v", err)
	}

	fmt.Printf("%d %d\n", from, to)
}
