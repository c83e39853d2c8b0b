package render

// Built-in post shaders. Single-source GLSL: the asset loader compiles each
// once with VERTEX_SHADER and once with FRAGMENT_SHADER defined.

const sunShaderSource = `#version 410 core

#ifdef VERTEX_SHADER
layout(location = 0) in vec3 inPosition;
layout(location = 2) in vec2 inUV;

uniform mat4 uProjection;
uniform mat4 uView;
uniform mat4 uModel;

out vec2 fragUV;

void main() {
    gl_Position = uProjection * uView * uModel * vec4(inPosition, 1.0);
    fragUV = inUV;
}
#endif

#ifdef FRAGMENT_SHADER
in vec2 fragUV;

layout(location = 0) out vec4 outScene;
layout(location = 1) out vec4 outGlare;

void main() {
    vec2 p = fragUV * 2.0 - 1.0;
    float disk = smoothstep(1.0, 0.0, dot(p, p));
    outScene = vec4(0.0);
    outGlare = vec4(vec3(disk), disk);
}
#endif
`

const radialBlurShaderSource = `#version 410 core

#ifdef VERTEX_SHADER
layout(location = 0) in vec3 inPosition;

void main() {
    gl_Position = vec4(inPosition.xy, 0.0, 1.0);
}
#endif

#ifdef FRAGMENT_SHADER
uniform sampler2D uGlare;
uniform vec2  uResolution;
uniform vec2  uCenter;
uniform float uStrength;
uniform float uTime;
uniform float uIterations;

layout(location = 0) out vec4 outColor;

// Per-pixel spatial hash; keep in sync with render.Jitter.
float jitter(vec2 co) {
    return fract(sin(dot(co, vec2(12.9898, 78.233))) * 43758.5453);
}

void main() {
    vec2 uv = gl_FragCoord.xy / uResolution;
    vec2 toCenter = uCenter - uv;
    float j = jitter(gl_FragCoord.xy + vec2(uTime));

    vec3 accum = vec3(0.0);
    float total = 0.0;
    for (float t = 0.0; t < uIterations; ++t) {
        float p = (t + j) / uIterations;
        float w = 4.0 * p * (1.0 - p);
        accum += texture(uGlare, uv + toCenter * p).rgb * w;
        total += w;
    }
    outColor = vec4(accum / max(total, 1e-4) * uStrength, 1.0);
}
#endif
`
