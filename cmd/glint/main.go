package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/glintclock/glint/internal/compositor"
	"github.com/glintclock/glint/internal/config"
	"github.com/glintclock/glint/internal/daemon"
	"github.com/glintclock/glint/internal/ipc"
	"github.com/glintclock/glint/internal/runtimepath"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		os.Exit(runDaemon(os.Args[2:]))
	case "face":
		os.Exit(runFace(os.Args[2:]))
	case "compact":
		os.Exit(runCompact(os.Args[2:]))
	case "scale":
		os.Exit(runScale(os.Args[2:]))
	case "lock":
		os.Exit(runLock(os.Args[2:]))
	case "output":
		os.Exit(runOutput(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "state":
		os.Exit(runState(os.Args[2:]))
	case "quit":
		os.Exit(runQuit(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: glint <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Start the glint daemon (foreground)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  face                Set or toggle the clock face (digital|analogue|toggle)")
	fmt.Fprintln(w, "  compact             Set or toggle compact mode (on|off|toggle)")
	fmt.Fprintln(w, "  scale               Adjust the active face's size by a pixel delta")
	fmt.Fprintln(w, "  lock                Set or toggle the position lock (on|off|toggle)")
	fmt.Fprintln(w, "  output              Move the clock to an output (name|next|prev)")
	fmt.Fprintln(w, "  reload              Re-read the config file")
	fmt.Fprintln(w, "  state               Show the daemon's current state")
	fmt.Fprintln(w, "  quit                Stop the daemon")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'glint <command> --help' for command-specific options.")
}

// socketFlag adds the shared --socket override to a client flag set.
func socketFlag(fs *flag.FlagSet) *string {
	return fs.String("socket", "", "Control socket path (default: runtime dir glint.sock)")
}

func runDaemon(args []string) int {
	fs := flag.NewFlagSet("daemon", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glint daemon [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run the clock in the foreground.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "Config file path (default: ~/.config/glint/config.yaml)")
	socketPath := socketFlag(fs)
	face := fs.String("face", "", "Override the clock face (digital|analogue)")
	compact := fs.Bool("compact", false, "Start in compact mode")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "daemon takes no arguments")
		fs.Usage()
		return 2
	}

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Printf("Failed to resolve config path: %v", err)
			return 1
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}
	if *face != "" {
		mode := config.FaceMode(*face)
		if mode != config.FaceDigital && mode != config.FaceAnalogue {
			fmt.Fprintf(os.Stderr, "Unknown face: %s\n", *face)
			return 2
		}
		cfg.Clock.Face = mode
	}
	if *compact {
		cfg.Window.Compact = true
	}
	log.Printf("Configuration loaded (face: %s, anchor: %s)", cfg.Clock.Face, cfg.Window.Anchor)

	socket := *socketPath
	if socket == "" {
		s, err := runtimepath.SocketPath()
		if err != nil {
			log.Printf("Failed to resolve socket path: %v", err)
			return 1
		}
		socket = s
	}
	server, err := ipc.Listen(socket)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	defer server.Close()

	wl, err := compositor.Connect()
	if err != nil {
		log.Printf("Failed to connect to Wayland: %v", err)
		return 1
	}
	defer wl.Close()
	log.Println("glint daemon started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	if err := daemon.New(cfg, path, wl, server).Run(sigCh); err != nil {
		log.Printf("%v", err)
		return 1
	}
	return 0
}

func runFace(args []string) int {
	fs := flag.NewFlagSet("face", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glint face <digital|analogue|toggle>")
	}
	socket := socketFlag(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "face requires one argument")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient(*socket)
	var err error
	if fs.Arg(0) == "toggle" {
		err = client.ToggleFace()
	} else {
		err = client.SetFace(fs.Arg(0))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runCompact(args []string) int {
	fs := flag.NewFlagSet("compact", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glint compact <on|off|toggle>")
	}
	socket := socketFlag(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "compact requires one argument")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient(*socket)
	var err error
	switch fs.Arg(0) {
	case "on":
		err = client.SetCompact(true)
	case "off":
		err = client.SetCompact(false)
	case "toggle":
		err = client.ToggleCompact()
	default:
		fmt.Fprintf(os.Stderr, "compact wants on, off or toggle, got %q\n", fs.Arg(0))
		fs.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runScale(args []string) int {
	fs := flag.NewFlagSet("scale", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glint scale [--font-size N | --diameter N] [delta]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "With a bare delta the active face's size changes by that many")
		fmt.Fprintln(os.Stderr, "pixels (negative shrinks). The flags set an absolute size instead.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	socket := socketFlag(fs)
	fontSize := fs.Float64("font-size", 0, "Set the digital font size")
	diameter := fs.Int("diameter", 0, "Set the analogue diameter")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient(*socket)
	switch {
	case *fontSize != 0:
		if err := client.SetFontSize(*fontSize); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	case *diameter != 0:
		if err := client.SetDiameter(*diameter); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	case fs.NArg() == 1:
		delta, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "scale wants an integer delta, got %q\n", fs.Arg(0))
			return 2
		}
		if err := client.ScaleBy(delta); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	default:
		fs.Usage()
		return 2
	}
	return 0
}

func runLock(args []string) int {
	fs := flag.NewFlagSet("lock", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glint lock <on|off|toggle>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "A locked clock ignores pointer drags.")
	}
	socket := socketFlag(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "lock requires one argument")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient(*socket)
	var err error
	switch fs.Arg(0) {
	case "on":
		err = client.SetLocked(true)
	case "off":
		err = client.SetLocked(false)
	case "toggle":
		err = client.ToggleLocked()
	default:
		fmt.Fprintf(os.Stderr, "lock wants on, off or toggle, got %q\n", fs.Arg(0))
		fs.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runOutput(args []string) int {
	fs := flag.NewFlagSet("output", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glint output <name|next|prev>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move the clock to the named output, or cycle through outputs.")
	}
	socket := socketFlag(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "output requires one argument")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient(*socket)
	if err := client.MoveToOutput(fs.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runReload(args []string) int {
	fs := flag.NewFlagSet("reload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glint reload")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Re-read the config file. Face, compact and lock keep their")
		fmt.Fprintln(os.Stderr, "runtime values; anchor and margins come from the file.")
	}
	socket := socketFlag(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "reload takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient(*socket)
	if err := client.Reload(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runState(args []string) int {
	fs := flag.NewFlagSet("state", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glint state [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show the daemon's current face, size and placement.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	socket := socketFlag(fs)
	jsonOut := fs.Bool("json", false, "Output the raw state reply as JSON")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "state takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient(*socket)
	state, err := client.State()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *jsonOut {
		data, err := state.Marshal()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	fmt.Printf("face:        %s\n", state.Face)
	if state.Compact != nil {
		fmt.Printf("compact:     %v\n", *state.Compact)
	}
	if state.Width != nil && state.Height != nil {
		fmt.Printf("size:        %dx%d\n", *state.Width, *state.Height)
	}
	if state.FontSize != nil {
		fmt.Printf("font_size:   %g\n", *state.FontSize)
	}
	if state.Diameter != nil {
		fmt.Printf("diameter:    %d\n", *state.Diameter)
	}
	if state.Locked != nil {
		fmt.Printf("locked:      %v\n", *state.Locked)
	}
	if state.Output != "" {
		fmt.Printf("output:      %s\n", state.Output)
	}
	fmt.Printf("config_path: %s\n", state.ConfigPath)
	return 0
}

func runQuit(args []string) int {
	fs := flag.NewFlagSet("quit", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glint quit")
	}
	socket := socketFlag(fs)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "quit takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient(*socket)
	if err := client.Quit(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
