package main

import (
	"fmt"
	"sort"
	"strings"
)

type CommandHandler struct {
	items map[string]func(args []string) error
}

func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		items: make(map[string]func(args []string) error),
	}
}

func (ch *CommandHandler) Add(name string, handler func(args []string) error) {
	ch.items[name] = handler
}

func (ch *CommandHandler) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("command expected, one of %v", ch.names())
	}
	handler, found := ch.items[args[0]]
	if !found {
		return fmt.Errorf("command not found %v, expected one of %v", args[0], ch.names())
	}
	return handler(args[1:])
}

func (ch *CommandHandler) names() string {
	var result []string
	for name := range ch.items {
		result = append(result, name)
	}
	sort.Strings(result)
	return strings.Join(result, ", ")
}
