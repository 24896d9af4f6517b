// Package hcl_adapter produces tag tree events from HCL workflow documents.
//
// The HCL rendering mirrors the XML one:
//
//	workflow {
//	  modules {
//	    count = 1
//	    module {
//	      name           = "A"
//	      executionType  = "External"
//	      transportType  = "Pipe"
//	      executablePath = "/usr/bin/a"
//	      isStarting     = true
//	    }
//	  }
//	}
//
// Every block is a structural tag. An attribute named after a grammar tag
// becomes a child tag holding the attribute's value as text; a tuple value
// yields one child per element. Any other attribute, such as count, becomes
// an attribute of the enclosing tag. Items are emitted in source order.
package hcl_adapter
