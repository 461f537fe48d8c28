// Command jpctl is a thin operator CLI over jpplugins.Manager: search a
// directory, load or unload every discovered plugin, and inspect what is
// currently known. All decisions live in the library; this command only
// parses flags and prints results.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"encoding/json"
	"fmt"
	"os"

	flashflags "github.com/agilira/flash-flags"

	jpplugins "github.com/agilira/jp-plugins"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	mgr := jpplugins.NewManager(nil)

	var err error
	switch os.Args[1] {
	case "search":
		err = runSearch(mgr, os.Args[2:])
	case "load-all":
		err = runLoadAll(mgr, os.Args[2:])
	case "unload-all":
		err = runUnloadAll(mgr, os.Args[2:])
	case "list":
		err = runList(mgr, os.Args[2:])
	case "info":
		err = runInfo(mgr, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "jpctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: jpctl <command> [flags]

commands:
  search <dir>      scan a directory for plugins
  load-all          resolve and load every discovered plugin
  unload-all        unload every loaded plugin in reverse load order
  list              print every known plugin name
  info <name>       print one plugin's metadata as JSON`)
}

func runSearch(mgr *jpplugins.Manager, args []string) error {
	fs := flashflags.New("jpctl search")
	fs.SetDescription("scan a directory for plugins")
	recursive := fs.Bool("recursive", true, "descend into subdirectories")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("search requires exactly one directory argument")
	}

	code := mgr.SearchForPlugins(rest[0], *recursive, func(ev jpplugins.DiscoveryEvent) {
		fmt.Printf("%-24s %s\n", ev.Code.Message(), ev.Path)
	})
	if !code.OK() {
		return code.Err(rest[0])
	}
	return nil
}

func runLoadAll(mgr *jpplugins.Manager, args []string) error {
	fs := flashflags.New("jpctl load-all")
	fs.SetDescription("load every discovered plugin")
	tryToContinue := fs.Bool("try-to-continue", false, "skip unresolved plugins instead of aborting")
	if err := fs.Parse(args); err != nil {
		return err
	}

	code := mgr.LoadAll(*tryToContinue, func(ev jpplugins.DiscoveryEvent) {
		fmt.Printf("%-24s %s\n", ev.Code.Message(), ev.Path)
	})
	if !code.OK() {
		return code.Err("load-all")
	}
	fmt.Println("load order:", mgr.LoadOrder())
	return nil
}

func runUnloadAll(mgr *jpplugins.Manager, args []string) error {
	fs := flashflags.New("jpctl unload-all")
	fs.SetDescription("unload every loaded plugin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	code := mgr.UnloadAll(func(ev jpplugins.DiscoveryEvent) {
		fmt.Printf("%-24s %s\n", ev.Code.Message(), ev.Path)
	})
	if !code.OK() {
		return code.Err("unload-all")
	}
	return nil
}

func runList(mgr *jpplugins.Manager, args []string) error {
	fs := flashflags.New("jpctl list")
	fs.SetDescription("list every known plugin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, name := range mgr.PluginsList() {
		loaded := " "
		if mgr.IsPluginLoaded(name) {
			loaded = "*"
		}
		fmt.Printf("%s %s\n", loaded, name)
	}
	return nil
}

func runInfo(mgr *jpplugins.Manager, args []string) error {
	fs := flashflags.New("jpctl info")
	fs.SetDescription("print a plugin's metadata")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("info requires exactly one plugin name argument")
	}

	info, ok := mgr.PluginInfo(rest[0])
	if !ok {
		return fmt.Errorf("unknown plugin %q", rest[0])
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}
