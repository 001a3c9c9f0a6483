// Package scenefile loads release scenes from YAML documents.
//
// A scene file declares species, objects with their regions, release
// patterns and release sites. Region expressions are written as nested
// maps keyed by operator:
//
//	sites:
//	  - name: rel_a
//	    molecule: A
//	    region:
//	      subtraction: ["cell,ALL", "cell,membrane"]
//	    quantity: {method: concentration, concentration: 1e-6}
package scenefile
