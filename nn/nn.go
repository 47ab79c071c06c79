// Package nn builds Boolean GMDH-type networks: layered networks of binary
// logical units that approximate a target boolean function given as a truth table.
//
// A network grows one complexity layer at a time:
//   - Layer 0 holds one leaf unit per input attribute
//   - Layer c pairs units of earlier layers following a fixed schedule
//     (1: 0x0, 2: 0x1, 3: 0x2 and 1x1, 4: 0x3 and 1x2, 5: 0x4, 1x3 and 2x2)
//   - Every catalog function is scored on every pair; all functions reaching
//     the pair's minimum error become units
//
// Units live in an append-only Store and refer to their inputs by index, so the
// network is a DAG whose layers strictly decrease towards the leaves.
//
// The function catalog:
//   - AND, OR, XOR, NAND, NOR, XNOR
//   - AND NOT: l and not r
//   - NOT AND: not l and r
//   - IMPLICATION: not l or r
//   - EQUIVALENCE: (l and r) or (not l and not r)
//
// Example usage:
//
//	store, err := nn.Build(x, t, 3, nn.DefaultCatalog())
//	if err != nil {
//		return err
//	}
//	for _, i := range nn.ZeroErrorUnits(store) {
//		fmt.Println(nn.RuleString(store, i))
//	}
package nn
