// Package allformats blank-imports every codec package so their init()
// functions register with the format registry. A CLI driver imports
// allformats purely for its side effect.
package allformats

import (
	_ "github.com/particlezoo/phsp/codec/egs"
	_ "github.com/particlezoo/phsp/codec/iaea"
	_ "github.com/particlezoo/phsp/codec/peneasy"
	_ "github.com/particlezoo/phsp/codec/topas"
)
