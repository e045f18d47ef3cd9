// File: cmd/sockprobe/main.go
// Author: momentics <momentics@gmail.com>
//
// sockprobe is a diagnostic client for the polling transport: it dials a
// peer, optionally sends a payload, attempts one bounded receive and
// reports the tagged outcome of each step.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/momentics/plainsock/api"
	"github.com/momentics/plainsock/facade"
	"github.com/momentics/plainsock/logging"
)

const hostFlag = "host"
const portFlag = "port"
const payloadFlag = "payload"
const timeoutFlag = "timeout"
const verboseFlag = "verbose"

func main() {
	app := &cli.App{
		Name:  "sockprobe",
		Usage: "probe a TCP peer through the polling plaintext transport",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     hostFlag,
				Usage:    "Peer host name or IP",
				Required: true,
			},
			&cli.IntFlag{
				Name:     portFlag,
				Usage:    "Peer TCP port",
				Required: true,
			},
			&cli.StringFlag{
				Name:  payloadFlag,
				Usage: "Payload to send before receiving, empty to skip the send",
				Value: "",
			},
			&cli.IntFlag{
				Name:  timeoutFlag,
				Usage: "Per-call poll budget in milliseconds",
				Value: 500,
			},
			&cli.BoolFlag{
				Name:    verboseFlag,
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
				Value:   false,
			},
		},
		Action: probe,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "[!] Error: %s\n", err)
		os.Exit(1)
	}
}

func probe(cCtx *cli.Context) error {
	budget := time.Duration(cCtx.Int(timeoutFlag)) * time.Millisecond

	cfg := facade.DefaultConfig()
	cfg.SendTimeout = budget
	cfg.RecvTimeout = budget
	cfg.Verbose = cCtx.Bool(verboseFlag)

	log := logging.NewConsole(cfg.Verbose)
	p := facade.New(cfg, facade.WithLogger(log))

	server := api.ServerInfo{
		Host: cCtx.String(hostFlag),
		Port: uint16(cCtx.Int(portFlag)),
	}

	tr, err := p.Dial(context.Background(), server)
	if err != nil {
		return fmt.Errorf("dial %s: %w", server.Addr(), err)
	}
	defer tr.Disconnect()
	log.Infof("connected to %s (session %s)", server.Addr(), tr.ID())

	if payload := cCtx.String(payloadFlag); payload != "" {
		res, err := tr.Send([]byte(payload))
		if err != nil {
			return fmt.Errorf("send: %w", err)
		}
		log.Infof("send outcome: %s (%d/%d bytes)", res.Outcome, res.N, len(payload))
	}

	buf := make([]byte, 4096)
	res, err := tr.Recv(buf)
	switch res.Outcome {
	case api.OutcomeData:
		log.Infof("recv outcome: %s (%d bytes): %q", res.Outcome, res.N, buf[:res.N])
	case api.OutcomeWouldBlock:
		log.Infof("recv outcome: %s (no data within %v)", res.Outcome, budget)
	default:
		return fmt.Errorf("recv: %w", err)
	}

	return nil
}
