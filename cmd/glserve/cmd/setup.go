// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"cogentcore.org/webgl/base/exec"
	"github.com/spf13/cobra"
)

func setupCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Install the C toolchain and OpenGL ES / GLFW headers needed by the native demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, ld := range linuxDistros {
					fmt.Fprintln(cmd.OutOrStdout(), ld.String())
				}
				return nil
			}
			return Setup()
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "print the install command for each supported Linux distribution")
	return cmd
}

// Setup installs the dependencies of the native OpenGL ES demo for the
// current platform. It only needs to be called once per system.
func Setup() error {
	vc := exec.Major()
	switch runtime.GOOS {
	case "darwin":
		p, err := exec.Output("xcode-select", "-p")
		if err != nil || p == "" {
			return vc.Run("xcode-select", "--install")
		}
		slog.Warn("xcode tools already installed")
		return nil
	case "linux":
		for _, ld := range linuxDistros {
			if _, err := exec.LookPath(ld.Tool); err != nil {
				continue
			}
			slog.Info("installing dependencies", "distro", ld.Name)
			cmd, args := ld.cmd()
			return vc.Run(cmd, args...)
		}
		return fmt.Errorf("unknown Linux distro; install gcc and the OpenGL ES, EGL and X11 development packages")
	}
	return fmt.Errorf("platform %q not supported for glserve setup", runtime.GOOS)
}

// linuxDistro represents the data needed to install dependencies for a specific Linux
// distribution family with the same installation steps.
type linuxDistro struct {

	// Name contains the user-friendly name(s) of the Linux distribution(s).
	Name string

	// Sudo is whether the package manager requires sudo.
	Sudo bool

	// Tool is the name of the package manager used for installation.
	Tool string

	// Command is the subcommand in the package manager used to install packages.
	Command []string

	// Packages are the packages that need to be installed.
	Packages []string
}

// cmd returns the command and arguments that install the packages.
func (ld *linuxDistro) cmd() (string, []string) {
	args := append(append([]string{}, ld.Command...), ld.Packages...)
	if ld.Sudo {
		return "sudo", append([]string{ld.Tool}, args...)
	}
	return ld.Tool, args
}

// String returns the name of the distribution and its install command.
func (ld *linuxDistro) String() string {
	cmd, args := ld.cmd()
	return ld.Name + ": " + cmd + " " + strings.Join(args, " ")
}

// linuxDistros contains the supported Linux distributions, with the
// packages needed to build against go-gl/gl/v3.1/gles2 and go-gl/glfw.
var linuxDistros = []*linuxDistro{
	{Name: "Debian/Ubuntu", Sudo: true, Tool: "apt", Command: []string{"install"}, Packages: []string{
		"gcc", "libgles2-mesa-dev", "libegl1-mesa-dev", "xorg-dev",
	}},
	{Name: "Fedora", Sudo: true, Tool: "dnf", Command: []string{"install"}, Packages: []string{
		"gcc", "mesa-libGLES-devel", "mesa-libEGL-devel", "libX11-devel", "libXcursor-devel", "libXrandr-devel", "libXinerama-devel", "libXi-devel", "libXxf86vm-devel",
	}},
	{Name: "Arch", Sudo: true, Tool: "pacman", Command: []string{"-S"}, Packages: []string{
		"gcc", "mesa", "libxcursor", "libxrandr", "libxinerama", "libxi",
	}},
	{Name: "openSUSE", Sudo: true, Tool: "zypper", Command: []string{"install"}, Packages: []string{
		"gcc", "Mesa-libGLESv2-devel", "Mesa-libEGL-devel", "libXcursor-devel", "libXrandr-devel", "libXi-devel", "libXinerama-devel", "libXxf86vm-devel",
	}},
	{Name: "Alpine", Sudo: true, Tool: "apk", Command: []string{"add"}, Packages: []string{
		"gcc", "mesa-dev", "libxcursor-dev", "libxrandr-dev", "libxinerama-dev", "libxi-dev", "linux-headers",
	}},
	{Name: "NixOS", Sudo: false, Tool: "nix-shell", Command: []string{"-p"}, Packages: []string{
		"libGL", "pkg-config", "xorg.libX11.dev", "xorg.libXcursor", "xorg.libXi", "xorg.libXinerama", "xorg.libXrandr", "xorg.libXxf86vm",
	}},
}
