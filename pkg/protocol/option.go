package protocol

import (
	"errors"
	"fmt"
	"strconv"
)

type Option interface {
	OptionName() string
	OptionString() string
	Set(s string) error
}

type BoolOption struct {
	Name  string
	Value *bool
}

func (opt *BoolOption) OptionName() string {
	return opt.Name
}

func (opt *BoolOption) OptionString() string {
	return fmt.Sprintf("option name %v type %v default %v",
		opt.Name, "check", *opt.Value)
}

func (opt *BoolOption) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*opt.Value = v
	return nil
}

type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) OptionName() string {
	return opt.Name
}

func (opt *IntOption) OptionString() string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.Name, "spin", *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errors.New("argument out of range")
	}
	*opt.Value = v
	return nil
}

type FloatOption struct {
	Name  string
	Min   float64
	Max   float64
	Value *float64
}

func (opt *FloatOption) OptionName() string {
	return opt.Name
}

func (opt *FloatOption) OptionString() string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.Name, "float", *opt.Value, opt.Min, opt.Max)
}

func (opt *FloatOption) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errors.New("argument out of range")
	}
	*opt.Value = v
	return nil
}

type StringOption struct {
	Name  string
	Vars  []string
	Value *string
}

func (opt *StringOption) OptionName() string {
	return opt.Name
}

func (opt *StringOption) OptionString() string {
	if len(opt.Vars) == 0 {
		return fmt.Sprintf("option name %v type %v default %v",
			opt.Name, "string", *opt.Value)
	}
	var s = fmt.Sprintf("option name %v type %v default %v",
		opt.Name, "combo", *opt.Value)
	for _, v := range opt.Vars {
		s += " var " + v
	}
	return s
}

func (opt *StringOption) Set(s string) error {
	if len(opt.Vars) != 0 && findIndexString(opt.Vars, s) == -1 {
		return fmt.Errorf("unknown value %v", s)
	}
	*opt.Value = s
	return nil
}
