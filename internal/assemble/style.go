// Copyright Loideroi Labs, 2026. All rights reserved.

package assemble

// stylesheet is the embedded presentation styling. Kept minimal: the
// document must be readable standalone, nothing more.
const stylesheet = `body { font-family: Georgia, serif; margin: 2em auto; max-width: 60em; color: #1a1a1a; }
h1 { font-size: 1.5em; border-bottom: 2px solid #333; padding-bottom: 0.3em; }
h2 { font-size: 1.15em; margin-top: 1.6em; }
h3 { font-size: 1em; margin-top: 1.2em; }
table { border-collapse: collapse; width: 100%; margin: 0.6em 0; }
td { border: 1px solid #ccc; padding: 0.35em 0.6em; vertical-align: top; }
td.num { width: 4em; color: #555; white-space: nowrap; }
td.label { width: 22em; color: #333; }
td.value { font-family: inherit; }
`
