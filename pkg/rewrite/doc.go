/*
Package rewrite implements the single-document color rewrite.

	+-----------+     +-----------+     +-----------+
	|   read    | --> |  replace  | --> |   write   |
	| (afero)   |     | (text)    |     | (afero)   |
	+-----------+     +-----------+     +-----------+

🔄 Flow:
1. Read the whole target file
2. Apply the palette rule set in category order
3. Write the content back over the same path
4. Return the change records

The write happens on every run, including runs where no rule matched.
Running twice is safe: every rule is guarded against classes that already
carry a dark: variant, so the second run reports no changes.

🔍 Example:

	changes, err := rewrite.Rewrite(ctx, "app/docs/page.tsx")
*/
package rewrite
