package core

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Decode copies a loosely typed JSON value (maps, slices, float64 numbers) into output,
// matching struct fields by their json tag. Numbers and strings are converted into each other
// and embedded structs are flattened.
func Decode(input, output interface{}, hooks ...mapstructure.DecodeHookFunc) error {
	conf := &mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
		Result:           output,
	}
	if len(hooks) > 0 {
		conf.DecodeHook = mapstructure.ComposeDecodeHookFunc(hooks...)
	}

	dec, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return errors.Wrap(err, "creating decoder")
	}
	return errors.Wrap(dec.Decode(input), "decoding")
}
