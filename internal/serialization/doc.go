// Package serialization saves and loads function parameters in SafeTensors format.
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON, tensor name -> {dtype, shape, data_offsets}, plus "__metadata__"]
//	  [Tensor data: little-endian float64, tensors in alphabetical order]
//
// Every scalar parameter is stored as an F64 tensor of shape [1]. The
// metadata always carries a "sha256" checksum of the data section.
//
// Example usage:
//
//	// Save after training
//	meta := map[string]string{"epochs": "20"}
//	if err := serialization.SaveFunction("model.safetensors", f, meta); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Restore into a fresh function
//	g := nn.NewZeroBiasAffine(nn.AffineConfig{})
//	meta, err := serialization.LoadFunction("model.safetensors", g)
package serialization
