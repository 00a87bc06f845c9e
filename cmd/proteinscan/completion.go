// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/proteinscan/internal/errors"
)

const bashCompletionTemplate = `#!/bin/bash

# Bash completion for proteinscan
#   source <(proteinscan completion bash)

_proteinscan_completion() {
    local cur cmd
    cur="${COMP_WORDS[COMP_CWORD]}"

    if [ $COMP_CWORD -eq 1 ]; then
        if [[ ${cur} == -* ]] ; then
            COMPREPLY=( $(compgen -W "--config --json --no-color --quiet --verbose --debug --version" -- ${cur}) )
        else
            COMPREPLY=( $(compgen -W "init classify evaluate add status catalog completion" -- ${cur}) )
        fi
        return 0
    fi

    cmd="${COMP_WORDS[1]}"
    case "${cmd}" in
        init)
            COMPREPLY=( $(compgen -W "--force --dir" -- ${cur}) ) ;;
        classify)
            COMPREPLY=( $(compgen -W "--catalog --file --ocr --explain --lines --no-section" -- ${cur}) ) ;;
        evaluate)
            COMPREPLY=( $(compgen -W "--corpus --catalog --workers --metrics-addr --verbose" -- ${cur}) ) ;;
        add)
            COMPREPLY=( $(compgen -W "--corpus --catalog --id --name --source --barcode --notes --detect --not-detect --none" -- ${cur}) ) ;;
        status)
            COMPREPLY=( $(compgen -W "--corpus" -- ${cur}) ) ;;
        catalog)
            if [ $COMP_CWORD -eq 2 ]; then
                COMPREPLY=( $(compgen -W "validate show" -- ${cur}) )
            else
                COMPREPLY=( $(compgen -W "--catalog" -- ${cur}) )
            fi
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) ) ;;
    esac
}

complete -F _proteinscan_completion proteinscan
`

const zshCompletionTemplate = `#compdef proteinscan

# Zsh completion for proteinscan
#   proteinscan completion zsh > "${fpath[1]}/_proteinscan"

_proteinscan() {
    local -a commands
    commands=(
        'init:Create .proteinscan/ with config, catalog and test corpus'
        'classify:Detect protein sources in ingredient text'
        'evaluate:Run the test corpus against the classifier'
        'add:Add or replace a test corpus case'
        'status:Show test corpus curation status'
        'catalog:Validate or print the keyword catalog'
        'completion:Generate shell completion script'
    )

    _arguments -C \
        '--config[Path to config.yaml]:file:_files' \
        '--json[Machine-readable JSON output]' \
        '--no-color[Disable colored output]' \
        '(-q --quiet)'{-q,--quiet}'[Suppress progress output]' \
        '*'{-v,--verbose}'[Increase log verbosity]' \
        '--debug[Enable debug logging]' \
        '--version[Show version]' \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                classify)
                    _arguments \
                        '--catalog[Keyword catalog]:file:_files' \
                        '(-f --file)'{-f,--file}'[Input file]:file:_files' \
                        '--ocr[Clean up OCR errors]' \
                        '--explain[Show match trace]' \
                        '--lines[Classify each line]' \
                        '--no-section[Classify the whole text]'
                    ;;
                evaluate)
                    _arguments \
                        '--corpus[Test corpus]:file:_files' \
                        '--catalog[Keyword catalog]:file:_files' \
                        '--workers[Parallel workers]:number:' \
                        '--metrics-addr[Prometheus listen address]:addr:' \
                        '--verbose[List all cases]'
                    ;;
                catalog)
                    _arguments '1:subcommand:(validate show)' '--catalog[Keyword catalog]:file:_files'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_proteinscan "$@"
`

const fishCompletionTemplate = `# Fish completion for proteinscan
#   proteinscan completion fish > ~/.config/fish/completions/proteinscan.fish

set -l commands init classify evaluate add status catalog completion

complete -c proteinscan -f
complete -c proteinscan -n "not __fish_seen_subcommand_from $commands" -a init -d 'Create .proteinscan/ workspace'
complete -c proteinscan -n "not __fish_seen_subcommand_from $commands" -a classify -d 'Detect protein sources'
complete -c proteinscan -n "not __fish_seen_subcommand_from $commands" -a evaluate -d 'Run the test corpus'
complete -c proteinscan -n "not __fish_seen_subcommand_from $commands" -a add -d 'Add a test corpus case'
complete -c proteinscan -n "not __fish_seen_subcommand_from $commands" -a status -d 'Show corpus status'
complete -c proteinscan -n "not __fish_seen_subcommand_from $commands" -a catalog -d 'Validate or print the catalog'
complete -c proteinscan -n "not __fish_seen_subcommand_from $commands" -a completion -d 'Generate completion script'

complete -c proteinscan -l config -r -d 'Path to config.yaml'
complete -c proteinscan -l json -d 'JSON output'
complete -c proteinscan -l no-color -d 'Disable colors'
complete -c proteinscan -s q -l quiet -d 'Suppress progress'

complete -c proteinscan -n "__fish_seen_subcommand_from classify" -l catalog -r -d 'Keyword catalog'
complete -c proteinscan -n "__fish_seen_subcommand_from classify" -s f -l file -r -d 'Input file'
complete -c proteinscan -n "__fish_seen_subcommand_from classify" -l ocr -d 'Clean up OCR errors'
complete -c proteinscan -n "__fish_seen_subcommand_from classify" -l explain -d 'Show match trace'
complete -c proteinscan -n "__fish_seen_subcommand_from classify" -l lines -d 'Classify each line'
complete -c proteinscan -n "__fish_seen_subcommand_from evaluate" -l corpus -r -d 'Test corpus'
complete -c proteinscan -n "__fish_seen_subcommand_from evaluate" -l workers -x -d 'Parallel workers'
complete -c proteinscan -n "__fish_seen_subcommand_from evaluate" -l metrics-addr -x -d 'Prometheus address'
complete -c proteinscan -n "__fish_seen_subcommand_from catalog" -a 'validate show'
complete -c proteinscan -n "__fish_seen_subcommand_from completion" -a 'bash zsh fish'
`

// runCompletion prints the completion script for the named shell.
func runCompletion(args []string, s streams) error {
	fs := flag.NewFlagSet("completion", flag.ContinueOnError)
	fs.SetOutput(s.err)
	fs.Usage = func() {
		fmt.Fprintf(s.err, `Usage: proteinscan completion <bash|zsh|fish>

Examples:
  source <(proteinscan completion bash)
  proteinscan completion zsh > "${fpath[1]}/_proteinscan"
  proteinscan completion fish > ~/.config/fish/completions/proteinscan.fish
`)
	}

	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.NewInputError(
			"Invalid arguments",
			"The completion command requires exactly one argument: the shell name",
			"Run 'proteinscan completion bash', 'zsh' or 'fish'",
		)
	}

	switch shell := fs.Arg(0); shell {
	case "bash":
		fmt.Fprint(s.out, bashCompletionTemplate)
	case "zsh":
		fmt.Fprint(s.out, zshCompletionTemplate)
	case "fish":
		fmt.Fprint(s.out, fishCompletionTemplate)
	default:
		return errors.NewInputError(
			"Unsupported shell",
			fmt.Sprintf("Shell '%s' is not supported. Valid options: bash, zsh, fish", shell),
			"Run 'proteinscan completion bash', 'zsh' or 'fish'",
		)
	}
	return nil
}
