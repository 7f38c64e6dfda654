/*
Package scene loads timeline scenes from YAML.

A scene is an ordered list of units: figures, groups and animators, each with
a shape, an optional travel and the checkpoint / instant flags accepted by the
engine. Documents are decoded in two passes: YAML into generic maps, then
mapstructure into typed specs, which rejects unknown keys.

Example:

	name: intro
	units:
	  - kind: figure
	    id: title
	    checkpoint: true
	    shape: {kind: label, x: 2, y: 1, text: "Hello", color: "#ff8800"}
	    travel: {kind: fade, color: "#ffffff", frames: 20}
	  - kind: group
	    id: axes
	    members:
	      - {id: x-axis, shape: {kind: line, x: 0, y: 10, x2: 40, y2: 10}}
	      - {id: y-axis, shape: {kind: line, x: 0, y: 0, x2: 0, y2: 10}}
	  - kind: animator
	    id: points
	    steps:
	      - {kind: figure, id: p1, shape: {kind: dot, x: 4, y: 8}}
	      - {kind: figure, id: p2, shape: {kind: dot, x: 8, y: 6}}
*/
package scene
